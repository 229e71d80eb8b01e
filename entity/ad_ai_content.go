package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdAIContent is created asynchronously after its Ad already exists and may
// never be created at all; consumers treat its absence as normal.
type AdAIContent struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdID          uuid.UUID      `json:"ad_id" gorm:"type:uuid;not null;index"`
	AIDescription string         `json:"ai_description" gorm:"type:text"`
	Hashtags      datatypes.JSON `json:"hashtags" gorm:"type:json"`
	PromoImageURL string         `json:"promo_image_url" gorm:"type:varchar(1024)"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`

	Ad *Ad `json:"ad,omitempty" gorm:"foreignKey:AdID;constraint:OnDelete:CASCADE"`
}
