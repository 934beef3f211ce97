package parcel

import "time"

type ParcelDB struct {
	ID                    string     `db:"id"`
	TrackingID            string     `db:"tracking_id"`
	Title                 string     `db:"title"`
	Type                  string     `db:"type"`
	Email                 string     `db:"email"`
	SenderName            string     `db:"sender_name"`
	SenderRegion          string     `db:"sender_region"`
	SenderServiceCenter   string     `db:"sender_service_center"`
	ReceiverName          string     `db:"receiver_name"`
	ReceiverRegion        string     `db:"receiver_region"`
	ReceiverServiceCenter string     `db:"receiver_service_center"`
	Cost                  float64    `db:"cost"`
	CreationDate          time.Time  `db:"creation_date"`
	PaymentStatus         string     `db:"payment_status"`
	DeliveryStatus        string     `db:"delivery_status"`
	CashOutStatus         string     `db:"cash_out_status"`
	AssignedRiderID       *string    `db:"assigned_rider_id"`
	AssignedRiderName     *string    `db:"assigned_rider_name"`
	RiderEmail            *string    `db:"rider_email"`
	AssignedAt            *time.Time `db:"assigned_at"`
	PickedUpAt            *time.Time `db:"picked_up_at"`
	DeliveredAt           *time.Time `db:"delivered_at"`
	CashedOutAt           *time.Time `db:"cashed_out_at"`
}
