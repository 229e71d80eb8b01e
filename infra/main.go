package infra

import (
	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/infra/produce"
)

type Infra struct {
	Redis         *RedisClient
	Postgres      *PostgresClient
	Logger        *LoggerClient
	Telemetry     *Telemetry
	RabbitMQ      *RabbitMQClient
	Minio         *MinioClient
	UploadService *UploadService
	AIService     *AIService
	NotifyService *NotifyService
	MailerService *MailerService
	GoogleOAuth   *GoogleOAuth
	Produce       *produce.Produce
}

func InitInfra(cfg *config.Config) *Infra {
	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetry(cfg.EnvConfig)

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}

	uploadService := InitUploadService(cfg.EnvConfig, minio)
	if uploadService == nil {
		panic("Failed to initialize Upload service")
	}

	aiService := InitAIService(cfg.EnvConfig)
	if aiService == nil {
		panic("Failed to initialize AI service")
	}

	notifyService := InitNotifyService(cfg.EnvConfig)
	if notifyService == nil {
		panic("Failed to initialize Notify service")
	}

	mailerService := InitMailerService(cfg.EnvConfig)
	if mailerService == nil {
		panic("Failed to initialize Mailer service")
	}

	googleOAuth := InitGoogleOAuth(cfg.EnvConfig)
	if googleOAuth == nil {
		panic("Failed to initialize Google OAuth service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	return &Infra{
		Redis:         redis,
		Postgres:      postgres,
		Logger:        logger,
		Telemetry:     telemetry,
		RabbitMQ:      rabbitMQ,
		Minio:         minio,
		UploadService: uploadService,
		AIService:     aiService,
		NotifyService: notifyService,
		MailerService: mailerService,
		GoogleOAuth:   googleOAuth,
		Produce:       produceService,
	}
}
