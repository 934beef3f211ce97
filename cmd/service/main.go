package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "parcel-service/internal/app"
	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/admin_summary_get"
	"parcel-service/internal/handlers/rest/healthcheck_head"
	"parcel-service/internal/handlers/rest/parcel_assign_patch"
	"parcel-service/internal/handlers/rest/parcel_delete"
	"parcel-service/internal/handlers/rest/parcel_get"
	"parcel-service/internal/handlers/rest/parcel_post"
	"parcel-service/internal/handlers/rest/parcel_status_patch"
	"parcel-service/internal/handlers/rest/parcels_assignable_get"
	"parcel-service/internal/handlers/rest/parcels_get"
	"parcel-service/internal/handlers/rest/payment_intent_post"
	"parcel-service/internal/handlers/rest/payment_post"
	"parcel-service/internal/handlers/rest/payments_get"
	"parcel-service/internal/handlers/rest/ping_get"
	"parcel-service/internal/handlers/rest/rider_delete"
	"parcel-service/internal/handlers/rest/rider_parcels_get"
	"parcel-service/internal/handlers/rest/rider_patch"
	"parcel-service/internal/handlers/rest/rider_post"
	"parcel-service/internal/handlers/rest/rider_summary_get"
	"parcel-service/internal/handlers/rest/riders_get"
	"parcel-service/internal/handlers/rest/riders_status_get"
	"parcel-service/internal/handlers/rest/user_get"
	"parcel-service/internal/handlers/rest/user_post"
	"parcel-service/internal/handlers/rest/user_role_get"
	"parcel-service/internal/handlers/rest/user_role_patch"
	"parcel-service/internal/handlers/rest/users_get"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/dotenv"
	"parcel-service/internal/pkg/grpcclient"
	metrics_system "parcel-service/internal/pkg/metrics"
	"parcel-service/internal/pkg/middlewares/auth"
	"parcel-service/internal/pkg/middlewares/authorize"
	"parcel-service/internal/pkg/middlewares/graceful_shutdown"
	"parcel-service/internal/pkg/middlewares/metrics"
	"parcel-service/internal/pkg/middlewares/rate_limiter"
	"parcel-service/internal/pkg/middlewares/timeout"
	"parcel-service/internal/pkg/postgres"
	"parcel-service/internal/service/access"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/logger/zap_adapter"
)

type middleware = func(http.Handler) http.Handler

func main() {
	bootLogger, err := zap_adapter.NewZapAdapter("")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := bootLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	mainLog := bootLogger.With()

	mainLog.Info("starting parcel-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		mainLog.Error("configure logger", logger.NewField("error", err))
		return
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.PaymentGateway)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// задачи остановлены отменой ctx, ждем текущие итерации
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, rate_limiter.NewLimiter(cfg.RateLimiterQPS, cfg.RateLimiterBurst)))
	router.Use(authorize.RoleCache)
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	requireToken := auth.Required(log, app.Verifier)
	adminOnly := []middleware{requireToken, authorize.Middleware(log, app.Policy, access.ActionAdmin)}
	riderOnly := []middleware{requireToken, authorize.Middleware(log, app.Policy, access.ActionRider)}
	selfOnly := []middleware{requireToken, authorize.Middleware(log, app.Policy, access.ActionSelf)}

	// users
	router.Handle("/users", guard(users_get.New(log, app.ServiceUser), adminOnly...)).Methods("GET")
	router.Handle("/users", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/users/admin/{email}", guard(user_role_get.New(log, app.ServiceUser, entities.RoleAdmin), adminOnly...)).Methods("GET")
	router.Handle("/users/rider/{email}", guard(user_role_get.New(log, app.ServiceUser, entities.RoleRider), riderOnly...)).Methods("GET")
	router.Handle("/users/admin/{id}", user_role_patch.New(log, app.ServiceUser, entities.RoleAdmin)).Methods("PATCH")
	router.Handle("/users/remove_admin/{id}", user_role_patch.New(log, app.ServiceUser, entities.RoleUser)).Methods("PATCH")
	router.Handle("/users/{email}", user_get.New(log, app.ServiceUser)).Methods("GET")

	// parcels, статичные пути до {id}
	router.Handle("/parcels", guard(parcels_get.New(log, app.ServiceParcel), selfOnly...)).Methods("GET")
	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/available/riders", parcels_assignable_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/parcels/track/{trackingId}", parcel_get.NewTrack(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/assign/{id}", parcel_assign_patch.New(log, app.ServiceAssignment)).Methods("PATCH")
	router.Handle("/parcels/pickup/{id}", guard(parcel_status_patch.NewPickUp(log, app.ServiceParcel), riderOnly...)).Methods("PATCH")
	router.Handle("/parcels/deliver/{id}", parcel_status_patch.NewDeliver(log, app.ServiceParcel)).Methods("PATCH")
	router.Handle("/parcels/cashOut/{id}", parcel_status_patch.NewCashOut(log, app.ServiceParcel)).Methods("PATCH")
	router.Handle("/parcels/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcels/{id}", guard(parcel_delete.New(log, app.ServiceParcel), auth.Optional(log, app.Verifier))).Methods("DELETE")

	// payments
	router.Handle("/payments", guard(payments_get.New(log, app.ServicePayment), selfOnly...)).Methods("GET")
	router.Handle("/payments", payment_post.New(log, app.ServicePayment)).Methods("POST")
	router.Handle("/create-payment-intent", payment_intent_post.New(log, app.ServicePayment)).Methods("POST")

	// riders, статичные пути до {id}
	router.Handle("/riders", rider_post.New(log, app.ServiceRider)).Methods("POST")
	router.Handle("/riders", riders_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/riders/pending", guard(riders_status_get.New(log, app.ServiceRider, entities.RiderPending), adminOnly...)).Methods("GET")
	router.Handle("/riders/active", guard(riders_status_get.New(log, app.ServiceRider, entities.RiderApproved), adminOnly...)).Methods("GET")
	router.Handle("/riders/{id}", rider_patch.New(log, app.ServiceRider)).Methods("PATCH")
	router.Handle("/riders/{id}", rider_delete.New(log, app.ServiceRider)).Methods("DELETE")

	// rider dashboard
	router.Handle("/rider/pendingDeliveries/{email}", guard(rider_parcels_get.New(log, app.ServiceParcel, rider_parcels_get.ViewPending), riderOnly...)).Methods("GET")
	router.Handle("/rider/completedDeliveries/{email}", guard(rider_parcels_get.New(log, app.ServiceParcel, rider_parcels_get.ViewCompleted), riderOnly...)).Methods("GET")
	router.Handle("/rider/earnings/{email}", rider_parcels_get.New(log, app.ServiceParcel, rider_parcels_get.ViewEarnings)).Methods("GET")
	router.Handle("/rider/summary/{email}", rider_summary_get.New(log, app.ServiceSummary)).Methods("GET")

	router.Handle("/admin/summary", guard(admin_summary_get.New(log, app.ServiceSummary), adminOnly...)).Methods("GET")

	return router
}

// guard первый middleware в списке выполняется первым.
func guard(h http.Handler, mws ...middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
