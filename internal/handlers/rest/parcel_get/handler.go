package parcel_get

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/parcel"
)

type lookupFn func(ctx context.Context, key string) (*entities.Parcel, error)

// Handler одна посылка по id (/parcels/{id}) или по трек-номеру (/parcels/track/{trackingId}).
type Handler struct {
	log    handlerLogger
	lookup lookupFn
	param  string
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:    log.With(),
		lookup: service.GetParcel,
		param:  "id",
	}
}

func NewTrack(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:    log.With(),
		lookup: service.TrackParcel,
		param:  "trackingId",
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.lookup(r.Context(), mux.Vars(r)[h.param])
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, "parcel not found")
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToParcel(*p))
}
