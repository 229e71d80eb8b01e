package repository

import (
	"github.com/feedhub/feedhub-service/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AIContentRepository struct {
	db *gorm.DB
}

func NewAIContentRepository(db *gorm.DB) *AIContentRepository {
	return &AIContentRepository{db: db}
}

func (r *AIContentRepository) Create(content *entity.AdAIContent) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	return r.db.Create(content).Error
}

func (r *AIContentRepository) FindByAdID(adID uuid.UUID) (*entity.AdAIContent, error) {
	var content entity.AdAIContent
	err := r.db.Where("ad_id = ?", adID).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}
