//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_summary_get_test
package rider_summary_get

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
	RiderSummary(ctx context.Context, email string) (*entities.RiderSummary, error)
}
