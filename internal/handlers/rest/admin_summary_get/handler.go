package admin_summary_get

import (
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
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
	summary, err := h.service.AdminSummary(r.Context())
	if err != nil {
		response.Internal(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.AdminSummary{
		TotalUsers:           summary.TotalUsers,
		TotalRiders:          summary.TotalRiders,
		TotalParcels:         summary.TotalParcels,
		TotalPayments:        summary.TotalPayments,
		PendingParcels:       summary.PendingParcels,
		InTransition:         summary.InTransition,
		DeliveredParcels:     summary.DeliveredParcels,
		PendingRiderRequests: summary.PendingRiderRequests,
	})
}
