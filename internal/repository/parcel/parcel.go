package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository/store"
	"parcel-service/internal/service/parcel"
)

const newestFirst = "creation_date DESC"

type Repository struct {
	store *store.Store
}

func New(store *store.Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) Create(ctx context.Context, p entities.Parcel) (string, error) {
	id, err := r.store.Insert(ctx, store.Parcels, FromDomain(&p))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", parcel.ErrConflict
		}
		return "", fmt.Errorf("parcel repository create: %w", err)
	}
	return id, nil
}

// GetByID отсутствие посылки не ошибка, возвращает nil.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Parcel, error) {
	model, err := store.FindOne[ParcelDB](ctx, r.store, store.Parcels, sq.Eq{"id": id})
	if err != nil {
		return nil, fmt.Errorf("parcel repository get by id: %w", err)
	}
	return ToDomain(model), nil
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) (*entities.Parcel, error) {
	model, err := store.FindOne[ParcelDB](ctx, r.store, store.Parcels, sq.Eq{"tracking_id": trackingID})
	if err != nil {
		return nil, fmt.Errorf("parcel repository get by tracking id: %w", err)
	}
	return ToDomain(model), nil
}

// List посылки по фильтру, новые первыми.
func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	models, err := store.Find[ParcelDB](ctx, r.store, store.Parcels, FromDomainFilter(filter), newestFirst, "id")
	if err != nil {
		return nil, fmt.Errorf("parcel repository list: %w", err)
	}
	return ToDomainList(models), nil
}

// UpdateIf обновляет посылку только если она удовлетворяет условию.
func (r *Repository) UpdateIf(
	ctx context.Context,
	id string,
	cond entities.ParcelCondition,
	modify entities.ParcelModify,
) (entities.UpdateResult, error) {
	res, err := r.store.UpdateOne(ctx, store.Parcels, FromDomainCondition(id, cond), FromDomainModify(&modify))
	if err != nil {
		return entities.UpdateResult{}, fmt.Errorf("parcel repository update: %w", err)
	}
	return res, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := r.store.Delete(ctx, store.Parcels, sq.Eq{"id": id})
	if err != nil {
		return 0, fmt.Errorf("parcel repository delete: %w", err)
	}
	return deleted, nil
}

func (r *Repository) Count(ctx context.Context, filter entities.ParcelFilter) (int64, error) {
	count, err := r.store.Count(ctx, store.Parcels, FromDomainFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("parcel repository count: %w", err)
	}
	return count, nil
}

func (r *Repository) SumCost(ctx context.Context, filter entities.ParcelFilter) (float64, error) {
	rows, err := r.store.Aggregate(ctx, store.Parcels, store.Aggregation{
		Match: FromDomainFilter(filter),
		Sum:   "cost",
	})
	if err != nil {
		return 0, fmt.Errorf("parcel repository sum cost: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sum, nil
}

func (r *Repository) CountByDeliveryStatus(ctx context.Context, filter entities.ParcelFilter) ([]entities.StatusCount, error) {
	rows, err := r.store.Aggregate(ctx, store.Parcels, store.Aggregation{
		Match:   FromDomainFilter(filter),
		GroupBy: "delivery_status",
	})
	if err != nil {
		return nil, fmt.Errorf("parcel repository count by status: %w", err)
	}

	counts := make([]entities.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = entities.StatusCount{
			Status: entities.DeliveryStatusType(row.Key),
			Count:  row.Count,
		}
	}
	return counts, nil
}
