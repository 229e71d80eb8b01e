package controller

import (
	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/infra"
	"github.com/feedhub/feedhub-service/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
	}
}
