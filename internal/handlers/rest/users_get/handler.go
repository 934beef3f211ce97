package users_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.SearchUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.Internal(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToUsers(users))
}
