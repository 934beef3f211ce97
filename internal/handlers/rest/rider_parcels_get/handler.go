package rider_parcels_get

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

type View string

const (
	ViewPending   View = "pending"
	ViewCompleted View = "completed"
	ViewEarnings  View = "earnings"
)

type listFn func(ctx context.Context, riderEmail string) ([]entities.Parcel, error)

// Handler посылки райдера по email из пути, набор статусов задает View.
type Handler struct {
	log  handlerLogger
	list listFn
}

func New(log handlerLogger, service Service, view View) *Handler {
	var list listFn
	switch view {
	case ViewCompleted:
		list = service.CompletedDeliveries
	case ViewEarnings:
		list = service.Earnings
	default:
		list = service.PendingDeliveries
	}

	return &Handler{
		log: log.With(
			logger.NewField("view", string(view)),
		),
		list: list,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcels, err := h.list(r.Context(), mux.Vars(r)["email"])
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
