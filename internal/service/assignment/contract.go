//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"parcel-service/internal/entities"
)

type ParcelRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	UpdateIf(ctx context.Context, id string, cond entities.ParcelCondition, modify entities.ParcelModify) (entities.UpdateResult, error)
}

type RiderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error)
	Update(ctx context.Context, id string, modify entities.RiderModify) (entities.UpdateResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
