package repository

import (
	"testing"
	"time"

	"github.com/feedhub/feedhub-service/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestAIContentRepository_CreateAndFindByAdID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	ad := seedAd(t, repo.AdRepo, "enriched", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	record := &entity.AdAIContent{
		AdID:          ad.ID,
		AIDescription: "A sleek machine for everyday work.",
		Hashtags:      datatypes.JSON(`["#laptop","#deal"]`),
		PromoImageURL: "https://cdn.example.com/promo.png",
	}
	assert.NoError(t, repo.AIContentRepo.Create(record))
	assert.NotEqual(t, uuid.Nil, record.ID)

	got, err := repo.AIContentRepo.FindByAdID(ad.ID)
	assert.NoError(t, err)
	assert.Equal(t, record.AIDescription, got.AIDescription)
	assert.JSONEq(t, `["#laptop","#deal"]`, string(got.Hashtags))
	assert.Equal(t, record.PromoImageURL, got.PromoImageURL)
}

func TestAIContentRepository_AbsenceIsRecordNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewAIContentRepository(db)

	// Enrichment may never run; absence is the normal case.
	_, err := r.FindByAdID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
