//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=access_test
package access

import (
	"context"

	"parcel-service/internal/entities"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
