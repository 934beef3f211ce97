//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_summary_get_test
package admin_summary_get

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
	AdminSummary(ctx context.Context) (*entities.AdminSummary, error)
}
