package parcel_status_patch

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/pkg/identity"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

type transitionFn func(r *http.Request, id string) (entities.UpdateResult, error)

// Handler один шаг жизненного цикла посылки после назначения.
type Handler struct {
	log        handlerLogger
	transition transitionFn
}

// NewPickUp забрать посылку может только назначенный райдер.
func NewPickUp(log handlerLogger, service Service) *Handler {
	return newHandler(log, entities.EventPickUp, func(r *http.Request, id string) (entities.UpdateResult, error) {
		return service.MarkPickedUp(r.Context(), identity.FromContext(r.Context()), id)
	})
}

func NewDeliver(log handlerLogger, service Service) *Handler {
	return newHandler(log, entities.EventDeliver, func(r *http.Request, id string) (entities.UpdateResult, error) {
		return service.MarkDelivered(r.Context(), id)
	})
}

func NewCashOut(log handlerLogger, service Service) *Handler {
	return newHandler(log, entities.EventCashOut, func(r *http.Request, id string) (entities.UpdateResult, error) {
		return service.CashOut(r.Context(), id)
	})
}

func newHandler(log handlerLogger, event entities.Event, fn transitionFn) *Handler {
	return &Handler{
		log: log.With(
			logger.NewField("event", event.String()),
		),
		transition: fn,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.transition(r, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, parcel.ErrInvalidTransition):
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToUpdate(res))
}
