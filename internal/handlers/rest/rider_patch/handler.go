package rider_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	var statusDTO dto.RiderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	// email из тела игнорируется, каскад на роль идет по email заявки
	status := entities.RiderStatusType(statusDTO.Status)
	res, err := h.service.SetRiderStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidStatus):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, rider.ErrRiderNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	h.log.With(
		logger.NewField("rider", id),
		logger.NewField("status", status.String()),
	).Info("rider status changed")

	response.JSON(w, h.log, http.StatusOK, response.ToUpdate(res))
}
