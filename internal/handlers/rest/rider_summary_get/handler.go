package rider_summary_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/summary"
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
	email := mux.Vars(r)["email"]

	res, err := h.service.RiderSummary(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, summary.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.RiderSummary{
		TotalParcels:     res.TotalParcels,
		DeliveredParcels: res.DeliveredParcels,
		InTransition:     res.InTransition,
	})
}
