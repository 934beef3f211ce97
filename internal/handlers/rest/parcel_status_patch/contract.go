//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_status_patch_test
package parcel_status_patch

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
	MarkPickedUp(ctx context.Context, caller *entities.Identity, id string) (entities.UpdateResult, error)
	MarkDelivered(ctx context.Context, id string) (entities.UpdateResult, error)
	CashOut(ctx context.Context, id string) (entities.UpdateResult, error)
}
