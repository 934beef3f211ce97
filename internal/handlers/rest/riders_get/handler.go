package riders_get

import (
	"net/http"

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

// ServeHTTP без region отдает всех одобренных райдеров.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	riders, err := h.service.ApprovedRiders(r.Context(), region)
	if err != nil {
		response.Internal(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToRiders(riders))
}
