package parcel

import (
	"math"
	"strings"

	"parcel-service/internal/entities"
)

func isValidParcelID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func validateNewParcel(p *entities.Parcel) error {
	if strings.TrimSpace(p.Title) == "" ||
		strings.TrimSpace(p.SenderRegion) == "" ||
		strings.TrimSpace(p.ReceiverRegion) == "" {
		return ErrMissingRequiredFields
	}
	if !isValidEmail(p.OwnerEmail) {
		return ErrInvalidEmail
	}
	if p.Cost < 0 || math.IsNaN(p.Cost) || math.IsInf(p.Cost, 0) {
		return ErrInvalidCost
	}
	switch p.Type {
	case entities.ParcelDocument, entities.ParcelNonDocument:
	default:
		return ErrInvalidType
	}
	return nil
}
