package repository

import (
	"github.com/feedhub/feedhub-service/infra"
	"gorm.io/gorm"
)

type Repository struct {
	UserRepo      *UserRepository
	AdRepo        *AdRepository
	MediaRepo     *MediaRepository
	AIContentRepo *AIContentRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return NewRepository(infra.Postgres.DB)
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:      NewUserRepository(db),
		AdRepo:        NewAdRepository(db),
		MediaRepo:     NewMediaRepository(db),
		AIContentRepo: NewAIContentRepository(db),
	}
}

func (r *Repository) BeginTransaction(db *gorm.DB) *gorm.DB {
	return db.Begin()
}

// WithTransaction rebinds every repo to the transaction handle so a whole
// write path shares one connection until commit or rollback.
func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
