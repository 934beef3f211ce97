package user

import (
	"parcel-service/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      entities.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i := range usersDB {
		result[i] = *ToDomain(&usersDB[i])
	}
	return result
}

func FromDomain(u *entities.User) map[string]any {
	row := map[string]any{
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role.String(),
		"created_at": u.CreatedAt,
	}
	if u.ID != "" {
		row["id"] = u.ID
	}
	return row
}

func FromDomainModify(m *entities.UserModify) map[string]any {
	patch := make(map[string]any)
	if m == nil {
		return patch
	}

	if m.Email != nil {
		patch["email"] = *m.Email
	}
	if m.Name != nil {
		patch["name"] = *m.Name
	}
	if m.Role != nil {
		patch["role"] = m.Role.String()
	}
	if m.CreatedAt != nil {
		patch["created_at"] = *m.CreatedAt
	}

	return patch
}
