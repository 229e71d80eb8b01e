package repository

import (
	"testing"
	"time"

	"github.com/feedhub/feedhub-service/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedAd(t *testing.T, r *AdRepository, title string, createdAt time.Time) *entity.Ad {
	t.Helper()
	ad := &entity.Ad{
		UserID:      uuid.New(),
		Category:    "Electronics",
		SubCategory: "Laptops",
		Title:       title,
		Description: "seeded for test",
		Price:       100,
		CreatedAt:   createdAt,
	}
	if err := r.Create(ad); err != nil {
		t.Fatalf("failed to seed ad %q: %v", title, err)
	}
	return ad
}

func TestAdRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := NewAdRepository(db)

	ad := &entity.Ad{
		UserID:      uuid.New(),
		Category:    "Vehicles",
		SubCategory: "Bikes",
		Title:       "Mountain bike",
		Description: "Barely used",
		Price:       250.50,
	}

	assert.NoError(t, r.Create(ad))
	assert.NotEqual(t, uuid.Nil, ad.ID)

	got, err := r.FindByID(ad.ID)
	assert.NoError(t, err)
	assert.Equal(t, ad.Title, got.Title)
	assert.Equal(t, ad.Price, got.Price)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = r.FindByID(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdRepository_ListPage_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewAdRepository(db)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedAd(t, r, []string{"oldest", "older", "middle", "newer", "newest"}[i], base.Add(time.Duration(i)*time.Minute))
	}

	page, err := r.ListPage(3, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 3)
	assert.Equal(t, "newest", page[0].Title)
	assert.Equal(t, "newer", page[1].Title)
	assert.Equal(t, "middle", page[2].Title)
}

func TestAdRepository_ListPage_DisjointPages(t *testing.T) {
	db := newTestDB(t)
	r := NewAdRepository(db)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		seedAd(t, r, "ad", base.Add(time.Duration(i)*time.Minute))
	}

	first, err := r.ListPage(2, 0)
	assert.NoError(t, err)
	second, err := r.ListPage(2, 2)
	assert.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Len(t, second, 2)

	seen := map[uuid.UUID]bool{}
	for _, ad := range first {
		seen[ad.ID] = true
	}
	for _, ad := range second {
		assert.False(t, seen[ad.ID], "page 2 re-served an ad from page 1")
	}

	// Page one is strictly newer than page two.
	assert.True(t, first[1].CreatedAt.After(second[0].CreatedAt))
}

func TestRepository_TransactionCommitsAdWithMedia(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	tx := repo.BeginTransaction(db)
	assert.NoError(t, tx.Error)
	txRepo := repo.WithTransaction(tx)

	ad := &entity.Ad{
		UserID:      uuid.New(),
		Category:    "Property",
		SubCategory: "Flats",
		Title:       "2BHK downtown",
		Description: "Bright corner unit",
		Price:       90000,
	}
	assert.NoError(t, txRepo.AdRepo.Create(ad))

	for _, url := range []string{"/uploads/a.jpg", "/uploads/b.mp4"} {
		media := &entity.Media{AdID: ad.ID, MediaURL: url, MediaType: entity.MediaTypeImage}
		assert.NoError(t, txRepo.MediaRepo.Create(media))
	}

	assert.NoError(t, tx.Commit().Error)

	adCount, err := repo.AdRepo.CountAds()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), adCount)

	media, err := repo.MediaRepo.FindByAdID(ad.ID)
	assert.NoError(t, err)
	assert.Len(t, media, 2)
}

func TestRepository_RollbackLeavesNoPartialState(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	tx := repo.BeginTransaction(db)
	assert.NoError(t, tx.Error)
	txRepo := repo.WithTransaction(tx)

	ad := &entity.Ad{
		UserID:      uuid.New(),
		Category:    "Vehicles",
		SubCategory: "Cars",
		Title:       "Sedan",
		Description: "Runs fine",
		Price:       4000,
	}
	assert.NoError(t, txRepo.AdRepo.Create(ad))

	shared := uuid.New()
	first := &entity.Media{ID: shared, AdID: ad.ID, MediaURL: "/uploads/x.jpg", MediaType: entity.MediaTypeImage}
	assert.NoError(t, txRepo.MediaRepo.Create(first))

	// Duplicate primary key forces the mid-transaction failure.
	dup := &entity.Media{ID: shared, AdID: ad.ID, MediaURL: "/uploads/y.jpg", MediaType: entity.MediaTypeImage}
	assert.Error(t, txRepo.MediaRepo.Create(dup))

	tx.Rollback()

	adCount, err := repo.AdRepo.CountAds()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), adCount)

	mediaCount, err := repo.MediaRepo.CountMedia()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), mediaCount)
}
