package entities

type AdminSummary struct {
	TotalUsers           int64
	TotalRiders          int64
	TotalParcels         int64
	TotalPayments        float64
	PendingParcels       int64
	InTransition         int64
	DeliveredParcels     int64
	PendingRiderRequests int64
}

type RiderSummary struct {
	TotalParcels     int64
	DeliveredParcels int64
	InTransition     int64
}

// StatusCount строка группировки посылок по статусу.
type StatusCount struct {
	Status DeliveryStatusType
	Count  int64
}
