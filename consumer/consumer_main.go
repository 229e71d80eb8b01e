package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/consumer/worker"
	infraPkg "github.com/feedhub/feedhub-service/infra"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load("../.env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emailConsumer := worker.NewEmailConsumer(infra.RabbitMQ.Channel, infra)
	if err := emailConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Email consumer: %v", err)
		log.Fatalf("Failed to start Email consumer: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	cancel()

	infra.RabbitMQ.Close()
	infra.Logger.InfoWithContextf(ctx, "Consumer exited properly")
}
