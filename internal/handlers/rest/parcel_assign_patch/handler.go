package parcel_assign_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/assignment"
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
	var assignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	parcelID := mux.Vars(r)["id"]
	res, err := h.service.Assign(r.Context(), entities.AssignmentRequest{
		ParcelID:   parcelID,
		RiderID:    assignDTO.RiderId,
		RiderName:  pointer.GetString(assignDTO.RiderName),
		RiderEmail: pointer.GetString(assignDTO.RiderEmail),
	})
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidParcelID),
			errors.Is(err, assignment.ErrInvalidRiderID):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, assignment.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, assignment.ErrRiderNotAssignable),
			errors.Is(err, assignment.ErrParcelNotAssignable),
			errors.Is(err, assignment.ErrAssignmentFailed):
			h.log.With(
				logger.NewField("parcel", parcelID),
				logger.NewField("rider", assignDTO.RiderId),
				logger.NewField("error", err),
			).Warn("assignment rejected")
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	h.log.With(
		logger.NewField("parcel", res.ParcelID),
		logger.NewField("rider", res.RiderID),
	).Info("rider assigned")

	response.JSON(w, h.log, http.StatusOK, dto.AssignResponse{
		Success: true,
		Message: "Rider assigned successfully",
	})
}
