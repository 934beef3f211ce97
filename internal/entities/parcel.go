package entities

import (
	"time"
)

type Parcel struct {
	ID                    string
	TrackingID            string
	Title                 string
	Type                  ParcelType
	OwnerEmail            string
	SenderName            string
	SenderRegion          string
	SenderServiceCenter   string
	ReceiverName          string
	ReceiverRegion        string
	ReceiverServiceCenter string
	Cost                  float64
	CreatedAt             time.Time
	PaymentStatus         PaymentStatusType
	DeliveryStatus        DeliveryStatusType
	CashOutStatus         CashOutStatusType
	AssignedRider         *RiderRef
	RiderEmail            *string
	AssignedAt            *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CashedOutAt           *time.Time
}

// RiderRef копия id и имени райдера на момент назначения.
type RiderRef struct {
	ID   string
	Name string
}

type ParcelType string

const (
	ParcelDocument    ParcelType = "document"
	ParcelNonDocument ParcelType = "non-document"
)

func (t ParcelType) String() string {
	return string(t)
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryNotCollected DeliveryStatusType = "not-collected"
	DeliveryInTransition DeliveryStatusType = "in-transition"
	DeliveryPickedUp     DeliveryStatusType = "picked-up"
	DeliveryDelivered    DeliveryStatusType = "delivered"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

// ActiveDeliveryStatuses статусы, в которых посылка держит райдера занятым.
var ActiveDeliveryStatuses = []DeliveryStatusType{DeliveryInTransition, DeliveryPickedUp}

type CashOutStatusType string

const (
	CashOutNone      CashOutStatusType = "none"
	CashOutCashedOut CashOutStatusType = "cashed-out"
)

func (t CashOutStatusType) String() string {
	return string(t)
}

// ParcelModify частичное обновление, nil поля не трогаются.
type ParcelModify struct {
	TrackingID            *string
	Title                 *string
	Type                  *ParcelType
	OwnerEmail            *string
	SenderName            *string
	SenderRegion          *string
	SenderServiceCenter   *string
	ReceiverName          *string
	ReceiverRegion        *string
	ReceiverServiceCenter *string
	Cost                  *float64
	CreatedAt             *time.Time
	PaymentStatus         *PaymentStatusType
	DeliveryStatus        *DeliveryStatusType
	CashOutStatus         *CashOutStatusType
	AssignedRider         *RiderRef
	RiderEmail            *string
	AssignedAt            *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CashedOutAt           *time.Time
}

// ParcelCondition условие для conditional update, пустые поля не проверяются.
type ParcelCondition struct {
	PaymentStatus    *PaymentStatusType
	DeliveryStatuses []DeliveryStatusType
	CashOutStatus    *CashOutStatusType
	RiderEmail       *string
}

// ParcelFilter выборка посылок. DeliveryStatuses и CashOutStatuses объединяются через OR.
type ParcelFilter struct {
	OwnerEmail       *string
	RiderEmail       *string
	PaymentStatus    *PaymentStatusType
	DeliveryStatuses []DeliveryStatusType
	CashOutStatuses  []CashOutStatusType
}

// UpdateResult Matched нашлось по фильтру, Modified реально изменилось.
type UpdateResult struct {
	Matched  int64
	Modified int64
}
