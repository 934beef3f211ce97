package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidCost           = errors.New("invalid parcel cost")
	ErrInvalidType           = errors.New("invalid parcel type")

	ErrParcelNotFound    = errors.New("parcel not found")
	ErrConflict          = errors.New("parcel tracking id already exists")
	ErrInvalidTransition = errors.New("parcel status transition not allowed")
	ErrForbidden         = errors.New("forbidden")
)
