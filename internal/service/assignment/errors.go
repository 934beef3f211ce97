package assignment

import "errors"

var (
	ErrInvalidParcelID = errors.New("invalid parcel id")
	ErrInvalidRiderID  = errors.New("invalid rider id")

	ErrParcelNotFound      = errors.New("parcel not found")
	ErrRiderNotAssignable  = errors.New("rider is not approved for assignment")
	ErrParcelNotAssignable = errors.New("parcel must be paid and not collected")
	ErrAssignmentFailed    = errors.New("assignment failed")
)
