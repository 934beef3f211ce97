package access

import (
	"context"
	"strings"
	"sync"

	"parcel-service/internal/entities"
)

type roleCache struct {
	mu    sync.Mutex
	roles map[string]*entities.UserRole
}

type cacheKey struct{}

// WithRoleCache роль вызывающего читается из хранилища один раз за запрос.
func WithRoleCache(ctx context.Context) context.Context {
	if _, ok := ctx.Value(cacheKey{}).(*roleCache); ok {
		return ctx
	}
	return context.WithValue(ctx, cacheKey{}, &roleCache{roles: make(map[string]*entities.UserRole)})
}

func cacheFromContext(ctx context.Context) *roleCache {
	c, _ := ctx.Value(cacheKey{}).(*roleCache)
	return c
}

// lookup nil роль означает закэшированный промах.
func (c *roleCache) lookup(email string) (*entities.UserRole, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	role, ok := c.roles[strings.ToLower(email)]
	return role, ok
}

func (c *roleCache) store(email string, role *entities.UserRole) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.roles[strings.ToLower(email)] = role
}
