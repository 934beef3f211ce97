package entities

import "time"

type User struct {
	ID        string
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
	RoleRider UserRole = "rider"
)

const DefaultUserRole = RoleUser

func (r UserRole) String() string {
	return string(r)
}

type UserModify struct {
	Email     *string
	Name      *string
	Role      *UserRole
	CreatedAt *time.Time
}

// Identity проверенный вызывающий из bearer токена.
type Identity struct {
	Subject string
	Email   string
}
