//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_patch_test
package user_role_patch

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
	SetRole(ctx context.Context, id string, role entities.UserRole) (entities.UpdateResult, error)
}
