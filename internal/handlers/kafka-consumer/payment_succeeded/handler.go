package payment_succeeded

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcel-service/internal/repository/store"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/tx"
)

type Handler struct {
	eventService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventService Service, timeout time.Duration) *Handler {
	return &Handler{
		eventService:             eventService,
		log:                      log.With(logger.NewField("handler", "payment.succeeded")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, когда сообщение нужно переобработать:
// офсет не помечается и ConsumeClaim завершается.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event gatewayEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("type", event.Type),
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("transaction", event.TransactionID),
		logger.NewField("offset", message.Offset),
	)

	skipped, err := h.eventService.Process(ctx, event.toDomain())
	if err != nil {
		if isTransient(err) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("transient failure, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Error("failed to process gateway event")
		sess.MarkMessage(message, "")
		return false
	}

	if skipped {
		msgLog.Info("gateway event skipped")
	} else {
		msgLog.Info("gateway event processed")
	}

	sess.MarkMessage(message, "")
	return false
}

func isTransient(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, tx.ErrSerialization) ||
		errors.Is(err, store.ErrUnavailable)
}
