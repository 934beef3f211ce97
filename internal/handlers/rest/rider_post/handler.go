package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/rider"
	"parcel-service/pkg/logger"
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
	var riderDTO dto.RiderCreate
	err := json.NewDecoder(r.Body).Decode(&riderDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	rd, err := h.service.RegisterRider(r.Context(), entities.Rider{
		Name:     riderDTO.Name,
		Email:    riderDTO.Email,
		Phone:    pointer.GetString(riderDTO.Phone),
		Region:   pointer.GetString(riderDTO.Region),
		District: pointer.GetString(riderDTO.District),
	})
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, rider.ErrAlreadyExists):
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	h.log.With(
		logger.NewField("rider", rd.ID),
	).Info("rider application received")

	response.JSON(w, h.log, http.StatusCreated, dto.InsertResponse{
		InsertedId: rd.ID,
	})
}
