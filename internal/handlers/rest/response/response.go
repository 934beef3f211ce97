package response

import (
	"encoding/json"
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error тело ошибки всегда {"message": ...}.
func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

// Internal причина уходит только в лог, клиент видит общий текст.
func Internal(w http.ResponseWriter, log errorLogger, err error) {
	log.With(
		logger.NewField("error", err),
	).Error("request failed")

	Error(w, log, http.StatusInternalServerError, "internal server error")
}
