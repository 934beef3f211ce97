//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, u entities.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Search(ctx context.Context, term string) ([]entities.User, error)
	UpdateByID(ctx context.Context, id string, modify entities.UserModify) (entities.UpdateResult, error)
}
