package riders_status_get

import (
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/pkg/logger"
)

// Handler отдает райдеров с фиксированным статусом: pending для /riders/pending, approved для /riders/active.
type Handler struct {
	log     handlerLogger
	service Service
	status  entities.RiderStatusType
}

func New(log handlerLogger, service Service, status entities.RiderStatusType) *Handler {
	handlerLog := log.With(
		logger.NewField("status", status.String()),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
		status:  status,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	riders, err := h.service.GetRidersByStatus(r.Context(), h.status)
	if err != nil {
		response.Internal(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToRiders(riders))
}
