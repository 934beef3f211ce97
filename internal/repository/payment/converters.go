package payment

import (
	"parcel-service/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	return &entities.Payment{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		Email:         p.Email,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		PaymentMethod: p.PaymentMethod,
		PaidAt:        p.PaidAt,
		PaidAtString:  p.PaidAtString,
	}
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i := range paymentsDB {
		result[i] = *ToDomain(&paymentsDB[i])
	}
	return result
}

func FromDomain(p *entities.Payment) map[string]any {
	row := map[string]any{
		"parcel_id":      p.ParcelID,
		"email":          p.Email,
		"amount":         p.Amount,
		"transaction_id": p.TransactionID,
		"payment_method": p.PaymentMethod,
		"paid_at":        p.PaidAt,
		"paid_at_string": p.PaidAtString,
	}
	if p.ID != "" {
		row["id"] = p.ID
	}
	return row
}
