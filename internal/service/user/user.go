package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel-service/internal/entities"
)

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// CreateUser заводит пользователя с ролью user. Роль из запроса игнорируется,
// повысить можно только через SetRole или одобрение райдера.
func (s *Service) CreateUser(ctx context.Context, u entities.User) (*entities.User, error) {
	u.Email = strings.TrimSpace(u.Email)
	if !isValidEmail(u.Email) {
		return nil, ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	u.Role = entities.DefaultUserRole
	u.CreatedAt = time.Now()

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	u.ID = id

	return &u, nil
}

func (s *Service) SearchUsers(ctx context.Context, term string) ([]entities.User, error) {
	users, err := s.repo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// SetRole меняет роль по id. Повтор той же роли не ошибка, Modified будет 0.
func (s *Service) SetRole(ctx context.Context, id string, role entities.UserRole) (entities.UpdateResult, error) {
	if strings.TrimSpace(id) == "" {
		return entities.UpdateResult{}, ErrInvalidID
	}
	if !isValidRole(role) {
		return entities.UpdateResult{}, ErrInvalidRole
	}

	res, err := s.repo.UpdateByID(ctx, id, entities.UserModify{Role: &role})
	if err != nil {
		return entities.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}
	if res.Matched == 0 {
		return entities.UpdateResult{}, ErrUserNotFound
	}
	return res, nil
}

// HasRole отсутствующий пользователь не имеет ни одной роли.
func (s *Service) HasRole(ctx context.Context, email string, role entities.UserRole) (bool, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("get user role: %w", err)
	}
	return u != nil && u.Role == role, nil
}
