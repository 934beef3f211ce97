package access

import (
	"context"
	"fmt"
	"strings"

	"parcel-service/internal/entities"
)

type Action string

const (
	ActionAdmin Action = "admin"
	ActionRider Action = "rider"
	ActionSelf  Action = "self"
)

// Resource то, к чему обращается вызывающий. Для ActionSelf это email из запроса.
type Resource struct {
	Email string
}

type Policy struct {
	users UserRepository
}

func New(users UserRepository) *Policy {
	return &Policy{
		users: users,
	}
}

// Authorize единая точка проверки доступа.
func (p *Policy) Authorize(ctx context.Context, caller *entities.Identity, action Action, resource Resource) error {
	if caller == nil || strings.TrimSpace(caller.Email) == "" {
		return ErrUnauthenticated
	}

	switch action {
	case ActionSelf:
		// email хранится с учетом регистра, сравнение только точное
		if resource.Email == "" || caller.Email != resource.Email {
			return fmt.Errorf("%w: email does not belong to caller", ErrForbidden)
		}
		return nil
	case ActionAdmin:
		return p.requireRole(ctx, caller.Email, entities.RoleAdmin)
	case ActionRider:
		return p.requireRole(ctx, caller.Email, entities.RoleRider)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrForbidden, action)
	}
}

// HasRole проверка роли для сервисов, которым нужна только булева проверка.
func (p *Policy) HasRole(ctx context.Context, email string, role entities.UserRole) (bool, error) {
	stored, err := p.role(ctx, email)
	if err != nil {
		return false, err
	}
	return stored != nil && *stored == role, nil
}

func (p *Policy) requireRole(ctx context.Context, email string, role entities.UserRole) error {
	ok, err := p.HasRole(ctx, email, role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s role required", ErrForbidden, role)
	}
	return nil
}

func (p *Policy) role(ctx context.Context, email string) (*entities.UserRole, error) {
	cache := cacheFromContext(ctx)
	if cache != nil {
		if role, ok := cache.lookup(email); ok {
			return role, nil
		}
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup caller role: %w", err)
	}

	var role *entities.UserRole
	if user != nil {
		role = &user.Role
	}
	if cache != nil {
		cache.store(email, role)
	}
	return role, nil
}
