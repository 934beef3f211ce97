//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_status_get_test
package riders_status_get

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
	GetRidersByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error)
}
