package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/config"
)

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid bearer token")
	ErrNotConfigured = errors.New("identity verifier is not configured")
)

const clockSkew = 30 * time.Second

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Verifier проверяет HS256 токены провайдера идентичности.
// Issuer и audience сверяются, только если заданы в конфиге.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewVerifier(cfg config.Identity) (*Verifier, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrNotConfigured
	}
	return &Verifier{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
	}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (*entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var parsed claims
	if _, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	email := strings.TrimSpace(parsed.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email claim is required", ErrInvalidToken)
	}

	return &entities.Identity{
		Subject: parsed.Subject,
		Email:   email,
	}, nil
}

// BearerToken токен из заголовка Authorization, пустая строка если схема не Bearer.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id *entities.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext nil, если запрос без токена.
func FromContext(ctx context.Context) *entities.Identity {
	id, _ := ctx.Value(ctxKey{}).(*entities.Identity)
	return id
}
