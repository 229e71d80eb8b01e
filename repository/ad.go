package repository

import (
	"github.com/feedhub/feedhub-service/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) Create(ad *entity.Ad) error {
	if ad.ID == uuid.Nil {
		ad.ID = uuid.New()
	}
	return r.db.Create(ad).Error
}

func (r *AdRepository) FindByID(id uuid.UUID) (*entity.Ad, error) {
	var ad entity.Ad
	err := r.db.Where("id = ?", id).First(&ad).Error
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// ListPage returns one feed page, newest first. Ties on created_at are not
// explicitly broken.
func (r *AdRepository) ListPage(limit, offset int) ([]entity.Ad, error) {
	var ads []entity.Ad
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *AdRepository) CountAds() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Ad{}).Count(&count).Error
	return count, err
}
