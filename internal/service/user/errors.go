package user

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidID    = errors.New("invalid user id")
	ErrInvalidRole  = errors.New("invalid user role")

	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)
