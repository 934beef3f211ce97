//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=summary_test
package summary

import (
	"context"

	"parcel-service/internal/entities"
)

type ParcelRepository interface {
	Count(ctx context.Context, filter entities.ParcelFilter) (int64, error)
	SumCost(ctx context.Context, filter entities.ParcelFilter) (float64, error)
	CountByDeliveryStatus(ctx context.Context, filter entities.ParcelFilter) ([]entities.StatusCount, error)
}

type RiderRepository interface {
	Count(ctx context.Context, filter entities.RiderFilter) (int64, error)
}

type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}
