package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/entity"
	"github.com/feedhub/feedhub-service/infra"
	"github.com/feedhub/feedhub-service/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func newEnrichTestController(t *testing.T, aiBaseURL string) *Controller {
	t.Helper()

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&entity.Ad{}, &entity.Media{}, &entity.AdAIContent{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.EnvConfig{}
	cfg.AI.BaseURL = aiBaseURL
	cfg.AI.ChatModel = "test-chat"
	cfg.AI.ImageModel = "test-image"
	cfg.Environment.Mode = "development"

	return &Controller{
		Config: &config.Config{EnvConfig: cfg},
		Infra: &infra.Infra{
			Logger:    infra.InitLoggerClient(cfg),
			AIService: infra.InitAIService(cfg),
		},
		Repository: repository.NewRepository(db),
	}
}

func saveCommittedAd(t *testing.T, ctrl *Controller) *entity.Ad {
	t.Helper()
	ad := &entity.Ad{
		UserID:      uuid.New(),
		Category:    "Electronics",
		SubCategory: "Laptops",
		Title:       "Ultrabook",
		Description: "Light and fast",
		Price:       899,
	}
	if err := ctrl.Repository.AdRepo.Create(ad); err != nil {
		t.Fatalf("failed to seed ad: %v", err)
	}
	return ad
}

func TestEnrichAd_PersistsSingleRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chat/completions":
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"description\":\"Sleek daily driver.\",\"hashtags\":[\"#laptop\",\"#ultrabook\"]}"}}]}`))
		case "/images/generations":
			_, _ = w.Write([]byte(`{"data":[{"url":"https://cdn.example.com/promo.png"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ctrl := newEnrichTestController(t, server.URL)
	ad := saveCommittedAd(t, ctrl)

	ctrl.EnrichAd(ad)

	record, err := ctrl.Repository.AIContentRepo.FindByAdID(ad.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Sleek daily driver.", record.AIDescription)
	assert.Equal(t, "https://cdn.example.com/promo.png", record.PromoImageURL)

	var hashtags []string
	assert.NoError(t, json.Unmarshal(record.Hashtags, &hashtags))
	assert.Equal(t, []string{"#laptop", "#ultrabook"}, hashtags)
}

func TestEnrichAd_AbandonsOnChatFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctrl := newEnrichTestController(t, server.URL)
	ad := saveCommittedAd(t, ctrl)

	ctrl.EnrichAd(ad)

	// The committed ad is untouched and no partial enrichment row exists.
	_, err := ctrl.Repository.AIContentRepo.FindByAdID(ad.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	kept, err := ctrl.Repository.AdRepo.FindByID(ad.ID)
	assert.NoError(t, err)
	assert.Equal(t, ad.Title, kept.Title)
}

func TestEnrichAd_AbandonsOnUndecodableReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chat/completions":
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"I am not JSON."}}]}`))
		default:
			_, _ = w.Write([]byte(`{"data":[{"url":"https://cdn.example.com/promo.png"}]}`))
		}
	}))
	defer server.Close()

	ctrl := newEnrichTestController(t, server.URL)
	ad := saveCommittedAd(t, ctrl)

	ctrl.EnrichAd(ad)

	_, err := ctrl.Repository.AIContentRepo.FindByAdID(ad.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEnrichAd_AbandonsOnImageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/chat/completions":
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"description\":\"Fine.\",\"hashtags\":[\"#ok\"]}"}}]}`))
		default:
			http.Error(w, "no image backend", http.StatusBadGateway)
		}
	}))
	defer server.Close()

	ctrl := newEnrichTestController(t, server.URL)
	ad := saveCommittedAd(t, ctrl)

	ctrl.EnrichAd(ad)

	_, err := ctrl.Repository.AIContentRepo.FindByAdID(ad.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
