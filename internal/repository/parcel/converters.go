package parcel

import (
	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	parcel := &entities.Parcel{
		ID:                    p.ID,
		TrackingID:            p.TrackingID,
		Title:                 p.Title,
		Type:                  entities.ParcelType(p.Type),
		OwnerEmail:            p.Email,
		SenderName:            p.SenderName,
		SenderRegion:          p.SenderRegion,
		SenderServiceCenter:   p.SenderServiceCenter,
		ReceiverName:          p.ReceiverName,
		ReceiverRegion:        p.ReceiverRegion,
		ReceiverServiceCenter: p.ReceiverServiceCenter,
		Cost:                  p.Cost,
		CreatedAt:             p.CreationDate,
		PaymentStatus:         entities.PaymentStatusType(p.PaymentStatus),
		DeliveryStatus:        entities.DeliveryStatusType(p.DeliveryStatus),
		CashOutStatus:         entities.CashOutStatusType(p.CashOutStatus),
		RiderEmail:            p.RiderEmail,
		AssignedAt:            p.AssignedAt,
		PickedUpAt:            p.PickedUpAt,
		DeliveredAt:           p.DeliveredAt,
		CashedOutAt:           p.CashedOutAt,
	}

	if p.AssignedRiderID != nil {
		parcel.AssignedRider = &entities.RiderRef{ID: *p.AssignedRiderID}
		if p.AssignedRiderName != nil {
			parcel.AssignedRider.Name = *p.AssignedRiderName
		}
	}

	return parcel
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i := range parcelsDB {
		result[i] = *ToDomain(&parcelsDB[i])
	}
	return result
}

func FromDomain(p *entities.Parcel) map[string]any {
	row := map[string]any{
		"tracking_id":             p.TrackingID,
		"title":                   p.Title,
		"type":                    p.Type.String(),
		"email":                   p.OwnerEmail,
		"sender_name":             p.SenderName,
		"sender_region":           p.SenderRegion,
		"sender_service_center":   p.SenderServiceCenter,
		"receiver_name":           p.ReceiverName,
		"receiver_region":         p.ReceiverRegion,
		"receiver_service_center": p.ReceiverServiceCenter,
		"cost":                    p.Cost,
		"creation_date":           p.CreatedAt,
		"payment_status":          p.PaymentStatus.String(),
		"delivery_status":         p.DeliveryStatus.String(),
		"cash_out_status":         p.CashOutStatus.String(),
	}
	if p.ID != "" {
		row["id"] = p.ID
	}
	return row
}

// FromDomainModify патч только из заданных полей.
func FromDomainModify(m *entities.ParcelModify) map[string]any {
	patch := make(map[string]any)
	if m == nil {
		return patch
	}

	if m.TrackingID != nil {
		patch["tracking_id"] = *m.TrackingID
	}
	if m.Title != nil {
		patch["title"] = *m.Title
	}
	if m.Type != nil {
		patch["type"] = m.Type.String()
	}
	if m.OwnerEmail != nil {
		patch["email"] = *m.OwnerEmail
	}
	if m.SenderName != nil {
		patch["sender_name"] = *m.SenderName
	}
	if m.SenderRegion != nil {
		patch["sender_region"] = *m.SenderRegion
	}
	if m.SenderServiceCenter != nil {
		patch["sender_service_center"] = *m.SenderServiceCenter
	}
	if m.ReceiverName != nil {
		patch["receiver_name"] = *m.ReceiverName
	}
	if m.ReceiverRegion != nil {
		patch["receiver_region"] = *m.ReceiverRegion
	}
	if m.ReceiverServiceCenter != nil {
		patch["receiver_service_center"] = *m.ReceiverServiceCenter
	}
	if m.Cost != nil {
		patch["cost"] = *m.Cost
	}
	if m.CreatedAt != nil {
		patch["creation_date"] = *m.CreatedAt
	}
	if m.PaymentStatus != nil {
		patch["payment_status"] = m.PaymentStatus.String()
	}
	if m.DeliveryStatus != nil {
		patch["delivery_status"] = m.DeliveryStatus.String()
	}
	if m.CashOutStatus != nil {
		patch["cash_out_status"] = m.CashOutStatus.String()
	}
	if m.AssignedRider != nil {
		patch["assigned_rider_id"] = m.AssignedRider.ID
		patch["assigned_rider_name"] = m.AssignedRider.Name
	}
	if m.RiderEmail != nil {
		patch["rider_email"] = *m.RiderEmail
	}
	if m.AssignedAt != nil {
		patch["assigned_at"] = *m.AssignedAt
	}
	if m.PickedUpAt != nil {
		patch["picked_up_at"] = *m.PickedUpAt
	}
	if m.DeliveredAt != nil {
		patch["delivered_at"] = *m.DeliveredAt
	}
	if m.CashedOutAt != nil {
		patch["cashed_out_at"] = *m.CashedOutAt
	}

	return patch
}

func FromDomainFilter(f entities.ParcelFilter) sq.Sqlizer {
	conds := sq.And{}

	if f.OwnerEmail != nil {
		conds = append(conds, sq.Eq{"email": *f.OwnerEmail})
	}
	if f.RiderEmail != nil {
		conds = append(conds, sq.Eq{"rider_email": *f.RiderEmail})
	}
	if f.PaymentStatus != nil {
		conds = append(conds, sq.Eq{"payment_status": f.PaymentStatus.String()})
	}

	// статусы доставки и выплаты объединяются через OR
	statuses := sq.Or{}
	if len(f.DeliveryStatuses) > 0 {
		statuses = append(statuses, sq.Eq{"delivery_status": deliveryStatusStrings(f.DeliveryStatuses)})
	}
	if len(f.CashOutStatuses) > 0 {
		values := make([]string, len(f.CashOutStatuses))
		for i, s := range f.CashOutStatuses {
			values[i] = s.String()
		}
		statuses = append(statuses, sq.Eq{"cash_out_status": values})
	}
	if len(statuses) > 0 {
		conds = append(conds, statuses)
	}

	if len(conds) == 0 {
		return nil
	}
	return conds
}

func FromDomainCondition(id string, c entities.ParcelCondition) sq.Sqlizer {
	conds := sq.And{sq.Eq{"id": id}}

	if c.PaymentStatus != nil {
		conds = append(conds, sq.Eq{"payment_status": c.PaymentStatus.String()})
	}
	if len(c.DeliveryStatuses) > 0 {
		conds = append(conds, sq.Eq{"delivery_status": deliveryStatusStrings(c.DeliveryStatuses)})
	}
	if c.CashOutStatus != nil {
		conds = append(conds, sq.Eq{"cash_out_status": c.CashOutStatus.String()})
	}
	if c.RiderEmail != nil {
		conds = append(conds, sq.Eq{"rider_email": *c.RiderEmail})
	}

	return conds
}

func deliveryStatusStrings(statuses []entities.DeliveryStatusType) []string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = s.String()
	}
	return values
}
