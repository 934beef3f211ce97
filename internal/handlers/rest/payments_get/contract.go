//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payments_get_test
package payments_get

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPaymentsByEmail(ctx context.Context, email string) ([]entities.Payment, error)
}
