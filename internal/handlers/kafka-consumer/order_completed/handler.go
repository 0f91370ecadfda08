package order_completed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"lavka/internal/apperr"
	"lavka/internal/entities"
	"lavka/internal/pkg/kafka"
	"lavka/pkg/logger"
)

// Handler применяет события доставки через тот же сверщик, что и POST /orders/complete.
type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order_completed"),
	)

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
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
				h.log.Info("order.completed: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("order.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event kafka.OrderCompletedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("courier", event.CourierID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.completed processing")

	_, err = h.orderService.CompleteOrders(ctx, []entities.OrderComplete{{
		OrderID:      event.OrderID,
		CourierID:    event.CourierID,
		CompleteTime: event.CompleteTime,
	}})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, apperr.ErrInvalid),
			errors.Is(err, apperr.ErrNotFound),
			errors.Is(err, apperr.ErrConflict):
			msgLog.With(
				logger.NewField("error", apperr.Detail(err)),
			).Warn("order.completed handler rejected event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.completed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.completed: processed")

	sess.MarkMessage(message, "")
	return false
}
