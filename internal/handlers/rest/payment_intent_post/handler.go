package payment_intent_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/payment"
	"parcel-service/pkg/logger"
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
	var intentDTO dto.PaymentIntentCreate
	err := json.NewDecoder(r.Body).Decode(&intentDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	intent, err := h.service.CreatePaymentIntent(r.Context(), intentDTO.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, payment.ErrGatewayFailed):
			h.log.With(
				logger.NewField("error", err),
			).Error("payment gateway call failed")
			response.Error(w, h.log, http.StatusInternalServerError, "payment gateway unavailable")
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
	})
}
