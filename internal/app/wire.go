//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	paymentGateway "parcel-service/internal/gateway/grpc/payment"
	admin_summary_get "parcel-service/internal/handlers/rest/admin_summary_get"
	parcel_assign_patch "parcel-service/internal/handlers/rest/parcel_assign_patch"
	parcel_delete "parcel-service/internal/handlers/rest/parcel_delete"
	parcel_get "parcel-service/internal/handlers/rest/parcel_get"
	parcel_post "parcel-service/internal/handlers/rest/parcel_post"
	parcel_status_patch "parcel-service/internal/handlers/rest/parcel_status_patch"
	parcels_assignable_get "parcel-service/internal/handlers/rest/parcels_assignable_get"
	parcels_get "parcel-service/internal/handlers/rest/parcels_get"
	payment_intent_post "parcel-service/internal/handlers/rest/payment_intent_post"
	payment_post "parcel-service/internal/handlers/rest/payment_post"
	payments_get "parcel-service/internal/handlers/rest/payments_get"
	rider_delete "parcel-service/internal/handlers/rest/rider_delete"
	rider_parcels_get "parcel-service/internal/handlers/rest/rider_parcels_get"
	rider_patch "parcel-service/internal/handlers/rest/rider_patch"
	rider_post "parcel-service/internal/handlers/rest/rider_post"
	rider_summary_get "parcel-service/internal/handlers/rest/rider_summary_get"
	riders_get "parcel-service/internal/handlers/rest/riders_get"
	riders_status_get "parcel-service/internal/handlers/rest/riders_status_get"
	user_get "parcel-service/internal/handlers/rest/user_get"
	user_post "parcel-service/internal/handlers/rest/user_post"
	user_role_get "parcel-service/internal/handlers/rest/user_role_get"
	user_role_patch "parcel-service/internal/handlers/rest/user_role_patch"
	users_get "parcel-service/internal/handlers/rest/users_get"
	"parcel-service/internal/handlers/tasks/rider_release"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/factory/gateway_event_handle"
	"parcel-service/internal/pkg/factory/tracking_id"
	"parcel-service/internal/pkg/identity"

	parcelRepo "parcel-service/internal/repository/parcel"
	paymentRepo "parcel-service/internal/repository/payment"
	riderRepo "parcel-service/internal/repository/rider"
	"parcel-service/internal/repository/store"
	userRepo "parcel-service/internal/repository/user"
	"parcel-service/internal/service/access"
	assignmentService "parcel-service/internal/service/assignment"
	gatewayEventService "parcel-service/internal/service/gateway_event"
	parcelService "parcel-service/internal/service/parcel"
	paymentService "parcel-service/internal/service/payment"
	riderService "parcel-service/internal/service/rider"
	summaryService "parcel-service/internal/service/summary"
	userService "parcel-service/internal/service/user"

	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type (
	RiderReleaseInterval time.Duration
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceParcel     ServiceParcel
	ServiceAssignment ServiceAssignment
	ServicePayment    ServicePayment
	ServiceRider      ServiceRider
	ServiceSummary    ServiceSummary
	Policy            *access.Policy
	Verifier          *identity.Verifier
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	user_get.Service
	user_post.Service
	users_get.Service
	user_role_patch.Service
	user_role_get.Service
}

type ServiceParcel interface {
	parcels_get.Service
	parcel_get.Service
	parcel_post.Service
	parcel_delete.Service
	parcel_status_patch.Service
	rider_parcels_get.Service
}

type ServiceAssignment interface {
	parcel_assign_patch.Service
	parcels_assignable_get.Service
	riders_get.Service
}

type ServicePayment interface {
	payments_get.Service
	payment_post.Service
	payment_intent_post.Service
}

type ServiceRider interface {
	rider_post.Service
	riders_status_get.Service
	rider_patch.Service
	rider_delete.Service
	rider_release.Service
}

type ServiceSummary interface {
	admin_summary_get.Service
	rider_summary_get.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideStore,

	provideParcelRepository,
	providePaymentRepository,
	provideRiderRepository,
	provideUserRepository,

	wire.Bind(new(store.Querier), new(*querier.Querier)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		provideRiderReleaseInterval,

		access.New,
		tracking_id.New,
		provideVerifier,
		providePaymentGateway,

		userService.New,
		provideServiceParcel,
		assignmentService.New,
		provideServicePayment,
		riderService.New,
		summaryService.New,

		provideRiderReleaseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.Service)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Service)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),
		wire.Bind(new(ServiceRider), new(*riderService.Service)),
		wire.Bind(new(ServiceSummary), new(*summaryService.Service)),

		wire.Bind(new(access.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(parcelService.RoleChecker), new(*access.Policy)),
		wire.Bind(new(parcelService.TrackingIDFactory), new(*tracking_id.TrackingIDFactory)),

		wire.Bind(new(assignmentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(assignmentService.RiderRepository), new(*riderRepo.Repository)),

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(paymentService.Gateway), new(*paymentGateway.PaymentGateway)),

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(summaryService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(summaryService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(summaryService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(rider_release.Service), new(*riderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	GatewayEventService *gatewayEventService.Service
}

// InitializeKafkaWorkerApp для воркера событий шлюза (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,

		provideEventPaymentService,
		gateway_event_handle.NewEventHandlerFactory,
		gatewayEventService.New,

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(gatewayEventService.PaymentService), new(*paymentService.Service)),
		wire.Bind(new(gatewayEventService.HandlerFactory), new(*gateway_event_handle.EventHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideStore(querier store.Querier) *store.Store {
	return store.New(querier)
}

func provideParcelRepository(s *store.Store) *parcelRepo.Repository {
	return parcelRepo.New(s)
}

func providePaymentRepository(s *store.Store) *paymentRepo.Repository {
	return paymentRepo.New(s)
}

func provideRiderRepository(s *store.Store) *riderRepo.Repository {
	return riderRepo.New(s)
}

func provideUserRepository(s *store.Store) *userRepo.Repository {
	return userRepo.New(s)
}

func provideVerifier(cfg *config.Config) (*identity.Verifier, error) {
	return identity.NewVerifier(cfg.Identity)
}

func providePaymentGateway(conn *grpc.ClientConn) *paymentGateway.PaymentGateway {
	return paymentGateway.New(conn)
}

func provideServiceParcel(
	repository parcelService.Repository,
	riderRepository parcelService.RiderRepository,
	roleChecker parcelService.RoleChecker,
	trackingIDFactory parcelService.TrackingIDFactory,
	txManager parcelService.TxManager,
) *parcelService.Service {
	return parcelService.New(
		repository,
		riderRepository,
		roleChecker,
		trackingIDFactory,
		txManager,
	)
}

func provideServicePayment(
	repository paymentService.Repository,
	parcelRepository paymentService.ParcelRepository,
	gateway paymentService.Gateway,
	txManager paymentService.TxManager,
	cfg *config.Config,
) *paymentService.Service {
	return paymentService.New(repository, parcelRepository, gateway, txManager, cfg.PaymentGateway.Currency)
}

// provideEventPaymentService воркер только записывает оплаты, intent не создает, шлюз ему не нужен.
func provideEventPaymentService(
	repository paymentService.Repository,
	parcelRepository paymentService.ParcelRepository,
	txManager paymentService.TxManager,
	cfg *config.Config,
) *paymentService.Service {
	return paymentService.New(repository, parcelRepository, nil, txManager, cfg.PaymentGateway.Currency)
}

func provideRiderReleaseInterval(cfg *config.Config) RiderReleaseInterval {
	return RiderReleaseInterval(cfg.Tasks.RiderReleaseInterval)
}

func provideRiderReleaseTask(
	log logger.Logger,
	riderService rider_release.Service,
	interval RiderReleaseInterval,
) *rider_release.RiderRelease {
	return rider_release.NewRiderRelease(log, riderService, time.Duration(interval))
}

func provideTaskList(
	riderReleaseTask *rider_release.RiderRelease,
) []background.Task {
	return []background.Task{
		riderReleaseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
