//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=gateway_event_test
package gateway_event

import (
	"context"

	"parcel-service/internal/entities"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, p entities.Payment) (entities.PaymentRecord, error)
}

type (
	ExecuteFn      func(ctx context.Context, event entities.GatewayEvent) error
	HandlerFactory interface {
		GetHandler(eventType string) (ExecuteFn, error)
	}
)
