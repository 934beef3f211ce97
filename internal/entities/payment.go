package entities

import "time"

// Payment append-only запись об оплате посылки.
type Payment struct {
	ID            string
	ParcelID      string
	Email         string
	Amount        float64
	TransactionID string
	PaymentMethod string
	PaidAt        time.Time
	PaidAtString  string
}

// PaymentRecord результат записи оплаты.
type PaymentRecord struct {
	InsertedID   string
	UpdatedCount int64
}

type PaymentIntent struct {
	Amount       float64
	AmountCents  int64
	Currency     string
	Method       string
	ClientSecret string
}

// GatewayEvent сигнал платежного шлюза, приходит из kafka.
type GatewayEvent struct {
	Type          string
	ParcelID      string
	Email         string
	Amount        float64
	TransactionID string
	PaymentMethod string
}

const GatewayEventPaymentSucceeded = "payment_intent.succeeded"
