package parcel_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/pkg/identity"
	"parcel-service/internal/service/parcel"
)

// Handler токен необязателен: без него удаляются только неоплаченные посылки.
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
	caller := identity.FromContext(r.Context())

	deleted, err := h.service.DeleteParcel(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeleteResponse{
		DeletedCount: deleted,
	})
}
