package response

import (
	"github.com/AlekSi/pointer"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
)

func ToParcel(p entities.Parcel) dto.Parcel {
	res := dto.Parcel{
		Id:                    p.ID,
		TrackingId:            p.TrackingID,
		Title:                 p.Title,
		Type:                  p.Type.String(),
		Email:                 p.OwnerEmail,
		SenderName:            pointer.ToStringOrNil(p.SenderName),
		SenderRegion:          pointer.ToStringOrNil(p.SenderRegion),
		SenderServiceCenter:   pointer.ToStringOrNil(p.SenderServiceCenter),
		ReceiverName:          pointer.ToStringOrNil(p.ReceiverName),
		ReceiverRegion:        pointer.ToStringOrNil(p.ReceiverRegion),
		ReceiverServiceCenter: pointer.ToStringOrNil(p.ReceiverServiceCenter),
		Cost:                  p.Cost,
		CreationDate:          p.CreatedAt,
		PaymentStatus:         p.PaymentStatus.String(),
		DeliveryStatus:        p.DeliveryStatus.String(),
		CashOutStatus:         p.CashOutStatus.String(),
		RiderEmail:            p.RiderEmail,
		AssignedAt:            p.AssignedAt,
		PickedUpAt:            p.PickedUpAt,
		DeliveredAt:           p.DeliveredAt,
		CashedOutAt:           p.CashedOutAt,
	}
	if p.AssignedRider != nil {
		res.AssignedRider = &dto.RiderRef{
			Id:   p.AssignedRider.ID,
			Name: p.AssignedRider.Name,
		}
	}
	return res
}

// ToParcels пустой список кодируется как [], а не null.
func ToParcels(parcels []entities.Parcel) []dto.Parcel {
	res := make([]dto.Parcel, 0, len(parcels))
	for _, p := range parcels {
		res = append(res, ToParcel(p))
	}
	return res
}

func ToRider(rd entities.Rider) dto.Rider {
	return dto.Rider{
		Id:            rd.ID,
		Name:          rd.Name,
		Email:         rd.Email,
		Phone:         pointer.ToStringOrNil(rd.Phone),
		Region:        pointer.ToStringOrNil(rd.Region),
		District:      pointer.ToStringOrNil(rd.District),
		Status:        rd.Status.String(),
		WorkingStatus: rd.WorkingStatus.String(),
		CreatedAt:     rd.CreatedAt,
	}
}

func ToRiders(riders []entities.Rider) []dto.Rider {
	res := make([]dto.Rider, 0, len(riders))
	for _, rd := range riders {
		res = append(res, ToRider(rd))
	}
	return res
}

func ToUser(u entities.User) dto.User {
	return dto.User{
		Id:        u.ID,
		Email:     u.Email,
		Name:      pointer.ToStringOrNil(u.Name),
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func ToUsers(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToUser(u))
	}
	return res
}

func ToPayment(p entities.Payment) dto.Payment {
	return dto.Payment{
		Id:            p.ID,
		ParcelId:      p.ParcelID,
		Email:         p.Email,
		Amount:        p.Amount,
		TransactionId: pointer.ToStringOrNil(p.TransactionID),
		PaymentMethod: pointer.ToStringOrNil(p.PaymentMethod),
		PaidAt:        p.PaidAt,
		PaidAtString:  p.PaidAtString,
	}
}

func ToPayments(payments []entities.Payment) []dto.Payment {
	res := make([]dto.Payment, 0, len(payments))
	for _, p := range payments {
		res = append(res, ToPayment(p))
	}
	return res
}

func ToUpdate(res entities.UpdateResult) dto.UpdateResponse {
	return dto.UpdateResponse{
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
	}
}
