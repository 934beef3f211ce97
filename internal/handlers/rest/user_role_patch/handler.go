package user_role_patch

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/user"
	"parcel-service/pkg/logger"
)

// Handler выставляет фиксированную роль: admin для /users/admin/{id}, user для /users/remove_admin/{id}.
type Handler struct {
	log     handlerLogger
	service Service
	role    entities.UserRole
}

func New(log handlerLogger, service Service, role entities.UserRole) *Handler {
	handlerLog := log.With(
		logger.NewField("role", role.String()),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := h.service.SetRole(r.Context(), id, h.role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidID),
			errors.Is(err, user.ErrInvalidRole):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToUpdate(res))
}
