package payment

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"parcel-service/internal/entities"
)

const (
	serviceName = "payment-gateway"

	methodCreatePaymentIntent = "/paymentgateway.v1.PaymentGateway/CreatePaymentIntent"
)

// PaymentGateway клиент платежного шлюза. Вызовы не повторяются: повтор создал бы второй intent.
type PaymentGateway struct {
	client client
}

func New(client client) *PaymentGateway {
	return &PaymentGateway{
		client: client,
	}
}

func (g *PaymentGateway) CreatePaymentIntent(ctx context.Context, intent entities.PaymentIntent) (string, error) {
	req, err := fromDomainIntent(intent)
	if err != nil {
		return "", err
	}

	resp := &structpb.Struct{}
	err = g.executeWithMetrics(ctx, "CreatePaymentIntent", func(ctx context.Context) error {
		return g.client.Invoke(ctx, methodCreatePaymentIntent, req, resp)
	})
	if err != nil {
		return "", fmt.Errorf("gateway payment, create payment intent: %w", err)
	}

	return toClientSecret(resp)
}

func (g *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	GatewayRequestDuration.WithLabelValues(serviceName, method, getGRPCCode(err)).Observe(time.Since(start).Seconds())
	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
