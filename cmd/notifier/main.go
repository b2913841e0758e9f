package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"dhatucraft-be/internal/config"
	"dhatucraft-be/internal/logger"
	"dhatucraft-be/internal/metrics"
	"dhatucraft-be/internal/notification"

	"go.uber.org/zap"
)

const consumerGroup = "email-notifier"

// The notifier is a separate process: it drains the order-events topic and
// sends the confirmation and operator emails. The API server stays up even
// when SMTP is down.
func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := notification.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.OperatorEmail)
	handler := notification.NewHandler(sender, metrics.NewRegistry())

	consumer := notification.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, consumerGroup)
	defer consumer.Close()

	logger.L().Info("notifier worker started",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group", consumerGroup),
	)

	if err := consumer.Consume(ctx, handler.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
		logger.L().Fatal("consumer stopped", zap.Error(err))
	}

	logger.L().Info("notifier worker stopped")
}
