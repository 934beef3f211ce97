package rate_limiter

import (
	"golang.org/x/time/rate"
	"parcel-service/pkg/logger"
)

type Limiter interface {
	Allow() bool
	Limit() rate.Limit
	Burst() int
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
