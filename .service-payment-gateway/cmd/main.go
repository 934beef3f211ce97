package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/parcel/service-payment-gateway/internal/rpc/create_payment_intent"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	addr := os.Getenv("GRPC_ADDR")
	if addr == "" {
		addr = ":50051"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen", zap.String("addr", addr), zap.Error(err))
	}

	srv := grpc.NewServer()
	srv.RegisterService(&create_payment_intent.ServiceDesc, create_payment_intent.New(log))

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(create_payment_intent.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	go func() {
		log.Info("payment gateway stub listening", zap.String("addr", addr))
		if err := srv.Serve(lis); err != nil {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	<-ctx.Done()

	healthSrv.Shutdown()
	srv.GracefulStop()
}
