package repository

import (
	"github.com/feedhub/feedhub-service/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(media *entity.Media) error {
	if media.ID == uuid.Nil {
		media.ID = uuid.New()
	}
	return r.db.Create(media).Error
}

func (r *MediaRepository) FindByAdID(adID uuid.UUID) ([]entity.Media, error) {
	var media []entity.Media
	err := r.db.Where("ad_id = ?", adID).Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

// FindByAdIDs fetches media for a whole feed page in one batch query.
func (r *MediaRepository) FindByAdIDs(adIDs []uuid.UUID) ([]entity.Media, error) {
	if len(adIDs) == 0 {
		return nil, nil
	}
	var media []entity.Media
	err := r.db.Where("ad_id IN ?", adIDs).Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (r *MediaRepository) CountMedia() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Media{}).Count(&count).Error
	return count, err
}
