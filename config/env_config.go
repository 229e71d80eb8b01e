package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Expire    int
	}
	CORS struct {
		AllowDomains string
	}
	Redis struct {
		Password string
		Database int
		Host     string
		Port     string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		UploadBucket string
	}
	Upload struct {
		MaxFiles    int
		MaxFileSize int64
	}
	AI struct {
		BaseURL    string
		APIKey     string
		ChatModel  string
		ImageModel string
	}
	GoogleOAuth struct {
		ClientID     string
		ClientSecret string
		CallbackURL  string
	}
	ExternalService struct {
		WebhookURL       string
		MailerServiceURL string
		FrontendURL      string
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode string
	}
	DomainName string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		fmt.Sscanf(val, "%d", &config.JWT.Expire)
	} else {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.UploadBucket = os.Getenv("MINIO_UPLOAD_BUCKET")
	if config.Minio.UploadBucket == "" {
		config.Minio.UploadBucket = "uploads"
	}

	// Upload limits
	if val := os.Getenv("UPLOAD_MAX_FILES"); val != "" {
		config.Upload.MaxFiles, _ = strconv.Atoi(val)
	}
	if config.Upload.MaxFiles == 0 {
		config.Upload.MaxFiles = 10
	}
	if val := os.Getenv("UPLOAD_MAX_FILE_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Upload.MaxFileSize = size
		}
	}
	if config.Upload.MaxFileSize == 0 {
		config.Upload.MaxFileSize = 20 * 1024 * 1024
	}

	// AI generation service
	config.AI.BaseURL = os.Getenv("AI_SERVICE_URL")
	if config.AI.BaseURL == "" {
		config.AI.BaseURL = "https://api.openai.com/v1"
	}
	config.AI.APIKey = os.Getenv("AI_API_KEY")
	config.AI.ChatModel = os.Getenv("AI_CHAT_MODEL")
	if config.AI.ChatModel == "" {
		config.AI.ChatModel = "gpt-4o-mini"
	}
	config.AI.ImageModel = os.Getenv("AI_IMAGE_MODEL")
	if config.AI.ImageModel == "" {
		config.AI.ImageModel = "gpt-image-1"
	}

	// Google OAuth
	config.GoogleOAuth.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	config.GoogleOAuth.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	config.GoogleOAuth.CallbackURL = os.Getenv("GOOGLE_CALLBACK_URL")
	if config.GoogleOAuth.CallbackURL == "" {
		config.GoogleOAuth.CallbackURL = "http://localhost:8080/api/auth/google/callback"
	}

	config.ExternalService.WebhookURL = os.Getenv("WEBHOOK_URL")
	if config.ExternalService.WebhookURL == "" {
		config.ExternalService.WebhookURL = "http://localhost:8080/webhook/whatsapp"
	}
	config.ExternalService.MailerServiceURL = os.Getenv("MAILER_SERVICE_URL")
	if config.ExternalService.MailerServiceURL == "" {
		config.ExternalService.MailerServiceURL = "http://localhost:8083"
	}
	config.ExternalService.FrontendURL = os.Getenv("FRONTEND_URL")
	if config.ExternalService.FrontendURL == "" {
		config.ExternalService.FrontendURL = "http://localhost:5173"
	}

	// Grafana/OpenTelemetry
	grafanaEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	if strings.HasPrefix(grafanaEndpoint, "https://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "https://")
	} else if strings.HasPrefix(grafanaEndpoint, "http://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "http://")
	} else {
		config.Grafana.OTLPEndpoint = grafanaEndpoint
	}
	config.Grafana.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "feedhub-service"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	config.DomainName = os.Getenv("DOMAIN_NAME")
	if config.DomainName == "" {
		config.DomainName = "localhost:8080"
	}

	return &config
}
