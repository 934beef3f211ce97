package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository/store"
	"parcel-service/internal/service/rider"
)

const newestFirst = "created_at DESC"

type Repository struct {
	store *store.Store
}

func New(store *store.Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) Create(ctx context.Context, rd entities.Rider) (string, error) {
	id, err := r.store.Insert(ctx, store.Riders, FromDomain(&rd))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", rider.ErrAlreadyExists
		}
		return "", fmt.Errorf("rider repository create: %w", err)
	}
	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Rider, error) {
	model, err := store.FindOne[RiderDB](ctx, r.store, store.Riders, sq.Eq{"id": id})
	if err != nil {
		return nil, fmt.Errorf("rider repository get by id: %w", err)
	}
	return ToDomain(model), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Rider, error) {
	model, err := store.FindOne[RiderDB](ctx, r.store, store.Riders, sq.Eq{"email": email})
	if err != nil {
		return nil, fmt.Errorf("rider repository get by email: %w", err)
	}
	return ToDomain(model), nil
}

func (r *Repository) List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	models, err := store.Find[RiderDB](ctx, r.store, store.Riders, FromDomainFilter(filter), newestFirst, "id")
	if err != nil {
		return nil, fmt.Errorf("rider repository list: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) Update(ctx context.Context, id string, modify entities.RiderModify) (entities.UpdateResult, error) {
	res, err := r.store.UpdateOne(ctx, store.Riders, sq.Eq{"id": id}, FromDomainModify(&modify))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return entities.UpdateResult{}, rider.ErrAlreadyExists
		}
		return entities.UpdateResult{}, fmt.Errorf("rider repository update: %w", err)
	}
	return res, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := r.store.Delete(ctx, store.Riders, sq.Eq{"id": id})
	if err != nil {
		return 0, fmt.Errorf("rider repository delete: %w", err)
	}
	return deleted, nil
}

func (r *Repository) Count(ctx context.Context, filter entities.RiderFilter) (int64, error) {
	count, err := r.store.Count(ctx, store.Riders, FromDomainFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("rider repository count: %w", err)
	}
	return count, nil
}

// ReleaseIdle возвращает в available райдеров без активных посылок.
// Пустой email означает всех райдеров.
func (r *Repository) ReleaseIdle(ctx context.Context, email string) (int64, error) {
	active := make([]string, len(entities.ActiveDeliveryStatuses))
	for i, s := range entities.ActiveDeliveryStatuses {
		active[i] = s.String()
	}

	filter := sq.And{
		sq.Eq{"working_status": entities.RiderInDelivery.String()},
		sq.Expr(`NOT EXISTS (
			SELECT 1 FROM parcels p
			WHERE p.rider_email = riders.email AND p.delivery_status = ANY(?)
		)`, active),
	}
	if email != "" {
		filter = append(filter, sq.Eq{"email": email})
	}

	res, err := r.store.UpdateMany(ctx, store.Riders, filter, map[string]any{
		"working_status": entities.RiderAvailable.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("rider repository release idle: %w", err)
	}
	return res.Modified, nil
}
