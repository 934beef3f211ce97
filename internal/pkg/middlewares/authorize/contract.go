//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=authorize_test
package authorize

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/internal/service/access"
	"parcel-service/pkg/logger"
)

type Policy interface {
	Authorize(ctx context.Context, caller *entities.Identity, action access.Action, resource access.Resource) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
