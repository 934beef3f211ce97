package gateway_event_handle

import (
	"context"
	"errors"
	"fmt"

	"parcel-service/internal/entities"
	"parcel-service/internal/service/gateway_event"
	"parcel-service/internal/service/payment"
)

type EventHandlerFactory struct {
	paymentService gateway_event.PaymentService
}

func NewEventHandlerFactory(paymentService gateway_event.PaymentService) *EventHandlerFactory {
	return &EventHandlerFactory{
		paymentService: paymentService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType string) (gateway_event.ExecuteFn, error) {
	switch eventType {
	case entities.GatewayEventPaymentSucceeded:
		return f.paymentSucceededHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", gateway_event.ErrUndefinedEventType, eventType)
	}
}

// paymentSucceededHandler повторная доставка события не ошибка, оплата уже записана.
func (f *EventHandlerFactory) paymentSucceededHandler(ctx context.Context, event entities.GatewayEvent) error {
	_, err := f.paymentService.RecordPayment(ctx, entities.Payment{
		ParcelID:      event.ParcelID,
		Email:         event.Email,
		Amount:        event.Amount,
		TransactionID: event.TransactionID,
		PaymentMethod: event.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, payment.ErrAlreadyPaid) {
			return nil
		}
		return fmt.Errorf("record payment for parcel %s: %w", event.ParcelID, err)
	}
	return nil
}
