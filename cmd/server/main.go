package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dhatucraft-be/internal/api"
	"dhatucraft-be/internal/category"
	"dhatucraft-be/internal/config"
	"dhatucraft-be/internal/db"
	"dhatucraft-be/internal/logger"
	"dhatucraft-be/internal/media"
	"dhatucraft-be/internal/metrics"
	"dhatucraft-be/internal/notification"
	"dhatucraft-be/internal/order"
	"dhatucraft-be/internal/otp"
	"dhatucraft-be/internal/product"
	"dhatucraft-be/internal/promo"
	"dhatucraft-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	reg := metrics.NewRegistry()

	resolver := media.NewResolver(cfg.MediaBaseURL)
	uploader := media.NewClient(cfg.MediaUploadURL, cfg.MediaAPIKey)

	producer := notification.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	mailer := notification.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.OperatorEmail)
	otpStore := otp.NewRedisStore(cfg.RedisAddr)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, otpStore, mailer)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, resolver)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	promoRepo := promo.NewRepository(database)
	promoSvc := promo.NewService(promoRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, notification.NewOrderEvents(producer), resolver, reg)

	handler := api.NewHandler(userSvc, productSvc, categorySvc, promoSvc, orderSvc, uploader, reg, cfg.AppEnv)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      api.NewRouter(handler, cfg.FrontendOrigin),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.L().Info("storefront API listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}
