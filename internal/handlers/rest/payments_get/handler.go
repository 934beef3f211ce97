package payments_get

import (
	"errors"
	"net/http"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/payment"
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
	email := r.URL.Query().Get("email")
	if email == "" {
		response.Error(w, h.log, http.StatusBadRequest, "user email is required")
		return
	}

	payments, err := h.service.GetPaymentsByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidEmail):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToPayments(payments))
}
