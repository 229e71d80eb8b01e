package main

import (
	"log"

	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/http/controller"
	routes "github.com/feedhub/feedhub-service/http/route"
	infraPkg "github.com/feedhub/feedhub-service/infra"
	"github.com/feedhub/feedhub-service/repository"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)

	log.Println("HTTP Server started on :8080")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
