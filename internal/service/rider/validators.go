package rider

import (
	"strings"

	"parcel-service/internal/entities"
)

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidRiderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateRegistration(rd *entities.Rider) error {
	if strings.TrimSpace(rd.Name) == "" || strings.TrimSpace(rd.Region) == "" {
		return ErrMissingRequiredFields
	}
	if !isValidEmail(rd.Email) {
		return ErrInvalidEmail
	}
	return nil
}
