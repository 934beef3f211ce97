package user_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/user"
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

	u, err := h.service.GetUserByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToUser(*u))
}
