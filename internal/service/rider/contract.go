//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, rd entities.Rider) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	GetByEmail(ctx context.Context, email string) (*entities.Rider, error)
	List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error)
	Update(ctx context.Context, id string, modify entities.RiderModify) (entities.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	ReleaseIdle(ctx context.Context, email string) (int64, error)
}

type UserRepository interface {
	UpdateByEmail(ctx context.Context, email string, modify entities.UserModify) (entities.UpdateResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
