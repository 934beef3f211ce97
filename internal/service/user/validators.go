package user

import (
	"strings"

	"parcel-service/internal/entities"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func isValidRole(role entities.UserRole) bool {
	switch role {
	case entities.RoleUser, entities.RoleAdmin, entities.RoleRider:
		return true
	}
	return false
}
