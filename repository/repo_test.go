package repository

import (
	"testing"

	"github.com/feedhub/feedhub-service/entity"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database for repository tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Shared cache keeps every pooled connection on the same in-memory DB;
	// the test name keeps databases isolated between tests.
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Ad{}, &entity.Media{}, &entity.AdAIContent{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
