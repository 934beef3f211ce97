package retrier

import (
	"context"
	"time"

	"parcel-service/pkg/logger"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается после каждой неудачной попытки, next пауза до следующей.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
	Notify      NotifyFunc
}

// StartupProbe конфиг для проверки зависимостей при старте (postgres, kafka, grpc).
// Только для бутстрапа, бизнес операции не ретраим.
func StartupProbe(log logger.Logger, dependency string) Config {
	return Config{
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2.0,
		ShouldRetry:     nil, // все ошибки ретраим
		Notify:          LogNotify(log, dependency),
	}
}

func LogNotify(log logger.Logger, dependency string) NotifyFunc {
	return func(err error, next time.Duration) {
		log.Warn("dependency not ready, retrying",
			logger.NewField("dependency", dependency),
			logger.NewField("error", err),
			logger.NewField("retry_in", next.String()),
		)
	}
}
