package payment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository/store"
	"parcel-service/internal/service/payment"
)

type Repository struct {
	store *store.Store
}

func New(store *store.Store) *Repository {
	return &Repository{
		store: store,
	}
}

// Create на посылку допускается ровно одна оплата, повтор дает ErrAlreadyPaid.
func (r *Repository) Create(ctx context.Context, p entities.Payment) (string, error) {
	id, err := r.store.Insert(ctx, store.Payments, FromDomain(&p))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", payment.ErrAlreadyPaid
		}
		return "", fmt.Errorf("payment repository create: %w", err)
	}
	return id, nil
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	models, err := store.Find[PaymentDB](ctx, r.store, store.Payments, sq.Eq{"email": email}, "paid_at DESC", "id")
	if err != nil {
		return nil, fmt.Errorf("payment repository list by email: %w", err)
	}
	return ToDomainList(models), nil
}
