package payment_succeeded

import "parcel-service/internal/entities"

type gatewayEvent struct {
	Type          string  `json:"type"`
	ParcelID      string  `json:"parcelId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (e *gatewayEvent) toDomain() entities.GatewayEvent {
	return entities.GatewayEvent{
		Type:          e.Type,
		ParcelID:      e.ParcelID,
		Email:         e.Email,
		Amount:        e.Amount,
		TransactionID: e.TransactionID,
		PaymentMethod: e.PaymentMethod,
	}
}
