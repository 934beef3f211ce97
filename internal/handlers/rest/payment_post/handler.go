package payment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"parcel-service/internal/entities"
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
	var paymentDTO dto.PaymentCreate
	err := json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.service.RecordPayment(r.Context(), entities.Payment{
		ParcelID:      paymentDTO.ParcelId,
		Email:         paymentDTO.Email,
		Amount:        paymentDTO.Amount,
		TransactionID: pointer.GetString(paymentDTO.TransactionId),
		PaymentMethod: pointer.GetString(paymentDTO.PaymentMethod),
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingRequiredFields),
			errors.Is(err, payment.ErrInvalidEmail),
			errors.Is(err, payment.ErrInvalidAmount):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, payment.ErrParcelNotFound):
			response.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, payment.ErrAlreadyPaid),
			errors.Is(err, payment.ErrInvalidTransition):
			response.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			response.Internal(w, h.log, err)
		}
		return
	}

	h.log.With(
		logger.NewField("parcel", paymentDTO.ParcelId),
		logger.NewField("payment", record.InsertedID),
	).Info("payment recorded")

	response.JSON(w, h.log, http.StatusCreated, dto.PaymentCreateResponse{
		Message:      "Payment saved and parcel status updated",
		InsertedId:   record.InsertedID,
		UpdatedCount: record.UpdatedCount,
	})
}
