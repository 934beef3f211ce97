package entities

import "time"

type Rider struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Region        string
	District      string
	Status        RiderStatusType
	WorkingStatus WorkingStatusType
	CreatedAt     time.Time
}

type RiderStatusType string

const (
	RiderPending  RiderStatusType = "pending"
	RiderApproved RiderStatusType = "approved"
	RiderRejected RiderStatusType = "rejected"
)

const DefaultRiderStatus = RiderPending

func (t RiderStatusType) String() string {
	return string(t)
}

func (t RiderStatusType) IsValid() bool {
	switch t {
	case RiderPending, RiderApproved, RiderRejected:
		return true
	}
	return false
}

type WorkingStatusType string

const (
	RiderAvailable  WorkingStatusType = "available"
	RiderInDelivery WorkingStatusType = "in-delivery"
)

const DefaultWorkingStatus = RiderAvailable

func (t WorkingStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	Name          *string
	Email         *string
	Phone         *string
	Region        *string
	District      *string
	Status        *RiderStatusType
	WorkingStatus *WorkingStatusType
	CreatedAt     *time.Time
}

// RiderFilter пустые поля не фильтруют. Region ищется как подстрока без учета регистра.
type RiderFilter struct {
	Status        *RiderStatusType
	WorkingStatus *WorkingStatusType
	Region        *string
}
