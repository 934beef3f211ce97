package rider_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	deleted, err := h.service.DeleteRider(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID):
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
	).Info("rider deleted")

	response.JSON(w, h.log, http.StatusOK, dto.DeleteResponse{
		DeletedCount: deleted,
	})
}
