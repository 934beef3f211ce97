package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/parcel"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateParcel(r.Context(), toEntity(parcelCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidEmail),
			errors.Is(err, parcel.ErrInvalidCost),
			errors.Is(err, parcel.ErrInvalidType):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrConflict):
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.ParcelCreateResponse{
		InsertedId: created.ID,
		TrackingId: created.TrackingID,
	})
}

func toEntity(in dto.ParcelCreate) entities.Parcel {
	return entities.Parcel{
		TrackingID:            pointer.GetString(in.TrackingId),
		Title:                 in.Title,
		Type:                  entities.ParcelType(pointer.GetString(in.Type)),
		OwnerEmail:            in.Email,
		SenderName:            pointer.GetString(in.SenderName),
		SenderRegion:          pointer.GetString(in.SenderRegion),
		SenderServiceCenter:   pointer.GetString(in.SenderServiceCenter),
		ReceiverName:          pointer.GetString(in.ReceiverName),
		ReceiverRegion:        pointer.GetString(in.ReceiverRegion),
		ReceiverServiceCenter: pointer.GetString(in.ReceiverServiceCenter),
		Cost:                  in.Cost,
	}
}
