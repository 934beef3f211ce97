//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_patch_test
package rider_patch

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
	SetRiderStatus(ctx context.Context, id string, status entities.RiderStatusType) (entities.UpdateResult, error)
}
