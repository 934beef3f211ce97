package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository/store"
	"parcel-service/internal/service/user"
)

type Repository struct {
	store *store.Store
}

func New(store *store.Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) Create(ctx context.Context, u entities.User) (string, error) {
	id, err := r.store.Insert(ctx, store.Users, FromDomain(&u))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", user.ErrAlreadyExists
		}
		return "", fmt.Errorf("user repository create: %w", err)
	}
	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	model, err := store.FindOne[UserDB](ctx, r.store, store.Users, sq.Eq{"email": email})
	if err != nil {
		return nil, fmt.Errorf("user repository get by email: %w", err)
	}
	return ToDomain(model), nil
}

// Search подстрока в имени или email без учета регистра. Пустой term отдает всех.
func (r *Repository) Search(ctx context.Context, term string) ([]entities.User, error) {
	var filter sq.Sqlizer
	if term != "" {
		pattern := store.Contains(term)
		filter = sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		}
	}

	models, err := store.Find[UserDB](ctx, r.store, store.Users, filter, "created_at DESC", "id")
	if err != nil {
		return nil, fmt.Errorf("user repository search: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) UpdateByID(ctx context.Context, id string, modify entities.UserModify) (entities.UpdateResult, error) {
	return r.update(ctx, sq.Eq{"id": id}, modify)
}

func (r *Repository) UpdateByEmail(ctx context.Context, email string, modify entities.UserModify) (entities.UpdateResult, error) {
	return r.update(ctx, sq.Eq{"email": email}, modify)
}

func (r *Repository) update(ctx context.Context, filter sq.Sqlizer, modify entities.UserModify) (entities.UpdateResult, error) {
	res, err := r.store.UpdateOne(ctx, store.Users, filter, FromDomainModify(&modify))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return entities.UpdateResult{}, user.ErrAlreadyExists
		}
		return entities.UpdateResult{}, fmt.Errorf("user repository update: %w", err)
	}
	return res, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, store.Users, nil)
	if err != nil {
		return 0, fmt.Errorf("user repository count: %w", err)
	}
	return count, nil
}
