package gateway_event

import (
	"context"
	"errors"
	"strings"

	"parcel-service/internal/entities"
)

type Service struct {
	handlerFactory HandlerFactory
}

func New(handlerFactory HandlerFactory) *Service {
	return &Service{
		handlerFactory: handlerFactory,
	}
}

// Process возвращает skipped=true для типов событий, которые сервис не обрабатывает.
func (s *Service) Process(ctx context.Context, event entities.GatewayEvent) (skipped bool, err error) {
	if strings.TrimSpace(event.Type) == "" {
		return false, ErrMissingEventType
	}

	executeFn, err := s.handlerFactory.GetHandler(event.Type)
	if err != nil {
		if errors.Is(err, ErrUndefinedEventType) {
			return true, nil
		}
		return false, err
	}

	if err := executeFn(ctx, event); err != nil {
		return false, err
	}
	return false, nil
}
