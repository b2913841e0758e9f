package notification

import (
	"context"
	"encoding/json"
	"time"

	"dhatucraft-be/internal/logger"
	"dhatucraft-be/internal/metrics"

	"go.uber.org/zap"
)

const sendAttempts = 3

// Handler processes order events for the notifier worker.
type Handler struct {
	sender  Sender
	metrics *metrics.Registry
}

func NewHandler(sender Sender, reg *metrics.Registry) *Handler {
	return &Handler{sender: sender, metrics: reg}
}

// HandleEvent decodes a message from the order-events topic.
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	log := logger.FromCtx(ctx).With(zap.ByteString("key", key))

	var envelope Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		log.Error("failed to unmarshal event envelope", zap.Error(err))
		return err
	}

	if envelope.EventType != EventOrderPlaced {
		return nil
	}

	var e OrderPlacedEvent
	if err := json.Unmarshal(envelope.Payload, &e); err != nil {
		log.Error("failed to unmarshal order placed event", zap.Error(err))
		return err
	}

	log.Info("processing order placed event",
		zap.Uint("order_id", e.OrderID),
		zap.Uint("user_id", e.UserID),
	)

	h.sendWithRetry(ctx, "customer confirmation", e.OrderID, func() error {
		return h.sender.SendOrderConfirmation(e.Email, e)
	})
	h.sendWithRetry(ctx, "operator alert", e.OrderID, func() error {
		return h.sender.SendOperatorAlert(e)
	})

	return nil
}

// sendWithRetry retries a delivery a few times with a short pause. Delivery
// failures are terminal after the last attempt; they are logged and counted,
// never re-queued.
func (h *Handler) sendWithRetry(ctx context.Context, kind string, orderID uint, send func() error) {
	log := logger.FromCtx(ctx).With(
		zap.String("mail", kind),
		zap.Uint("order_id", orderID),
	)

	var err error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		if err = send(); err == nil {
			h.metrics.NotificationsSent.Inc()
			log.Info("mail sent", zap.Int("attempt", attempt))
			return
		}

		log.Warn("mail send failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			h.metrics.NotificationFailures.Inc()
			return
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	h.metrics.NotificationFailures.Inc()
	log.Error("mail delivery abandoned", zap.Error(err))
}
