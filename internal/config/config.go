package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	JWTSecret string

	RedisAddr string

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost      string
	SMTPPort      string
	SMTPFrom      string
	OperatorEmail string

	MediaBaseURL   string
	MediaUploadURL string
	MediaAPIKey    string

	FrontendOrigin string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		KafkaTopic: os.Getenv("KAFKA_TOPIC"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		OperatorEmail: os.Getenv("OPERATOR_EMAIL"),

		MediaBaseURL:   os.Getenv("MEDIA_BASE_URL"),
		MediaUploadURL: os.Getenv("MEDIA_UPLOAD_URL"),
		MediaAPIKey:    os.Getenv("MEDIA_API_KEY"),

		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "order-events"
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
