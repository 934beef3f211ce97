package entities

import "time"

type AssignmentRequest struct {
	ParcelID   string
	RiderID    string
	RiderName  string
	RiderEmail string
}

type Assignment struct {
	ParcelID   string
	RiderID    string
	RiderEmail string
	AssignedAt time.Time
}
