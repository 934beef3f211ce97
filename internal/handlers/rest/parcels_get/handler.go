package parcels_get

import (
	"errors"
	"net/http"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/parcel"
)

// Handler посылки владельца, новые первыми. Совпадение email с вызывающим
// проверяет middleware авторизации.
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
	parcels, err := h.service.GetParcelsByOwner(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToParcels(parcels))
}
