package payment

import (
	"math"
	"strings"

	"parcel-service/internal/entities"
)

// maxAmount ограничивает сумму так, чтобы перевод в центы помещался в int64.
const maxAmount = 1_000_000_000

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isFiniteAmount(amount float64) bool {
	return !math.IsInf(amount, 0) && !math.IsNaN(amount) && amount <= maxAmount
}

func isValidAmount(amount float64) bool {
	return amount > 0 && isFiniteAmount(amount)
}

// validatePayment проверяет тело оплаты. transactionId необязателен.
func validatePayment(p *entities.Payment) error {
	if strings.TrimSpace(p.ParcelID) == "" {
		return ErrMissingRequiredFields
	}
	if !isValidEmail(p.Email) {
		return ErrInvalidEmail
	}
	if p.Amount < 0 || !isFiniteAmount(p.Amount) {
		return ErrInvalidAmount
	}
	return nil
}
