//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, p entities.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Payment, error)
}

type ParcelRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Parcel, error)
	UpdateIf(ctx context.Context, id string, cond entities.ParcelCondition, modify entities.ParcelModify) (entities.UpdateResult, error)
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, intent entities.PaymentIntent) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
