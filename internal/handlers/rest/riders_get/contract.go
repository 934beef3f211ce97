//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_get_test
package riders_get

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
	ApprovedRiders(ctx context.Context, region string) ([]entities.Rider, error)
}
