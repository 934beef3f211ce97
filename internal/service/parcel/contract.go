//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, p entities.Parcel) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error)
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	UpdateIf(ctx context.Context, id string, cond entities.ParcelCondition, modify entities.ParcelModify) (entities.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type RiderRepository interface {
	ReleaseIdle(ctx context.Context, email string) (int64, error)
}

type RoleChecker interface {
	HasRole(ctx context.Context, email string, role entities.UserRole) (bool, error)
}

type TrackingIDFactory interface {
	NewTrackingID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
