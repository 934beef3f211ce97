package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidStatus         = errors.New("invalid rider status")

	ErrRiderNotFound = errors.New("rider not found")
	ErrAlreadyExists = errors.New("rider already registered")
)
