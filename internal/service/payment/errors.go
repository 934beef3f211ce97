package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidAmount         = errors.New("invalid amount")

	ErrParcelNotFound    = errors.New("parcel not found")
	ErrAlreadyPaid       = errors.New("parcel already paid")
	ErrInvalidTransition = errors.New("parcel cannot be paid in its current state")
	ErrGatewayFailed     = errors.New("payment gateway failed")
)
