package payment

import "time"

type PaymentDB struct {
	ID            string    `db:"id"`
	ParcelID      string    `db:"parcel_id"`
	Email         string    `db:"email"`
	Amount        float64   `db:"amount"`
	TransactionID string    `db:"transaction_id"`
	PaymentMethod string    `db:"payment_method"`
	PaidAt        time.Time `db:"paid_at"`
	PaidAtString  string    `db:"paid_at_string"`
}
