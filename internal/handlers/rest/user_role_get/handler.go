package user_role_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	role    entities.UserRole
}

// New поддерживает роли admin ({"isAdmin"}) и rider ({"isRider"}).
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
	email := mux.Vars(r)["email"]

	ok, err := h.service.HasRole(r.Context(), email, h.role)
	if err != nil {
		response.Internal(w, h.log, err)
		return
	}

	var body any
	switch h.role {
	case entities.RoleRider:
		body = dto.IsRiderResponse{IsRider: ok}
	default:
		body = dto.IsAdminResponse{IsAdmin: ok}
	}

	response.JSON(w, h.log, http.StatusOK, body)
}
