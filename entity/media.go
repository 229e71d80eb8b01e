package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Media struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdID      uuid.UUID `json:"ad_id" gorm:"type:uuid;not null;index"`
	MediaURL  string    `json:"media_url" gorm:"type:varchar(1024);not null"`
	MediaType string    `json:"media_type" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	Ad *Ad `json:"ad,omitempty" gorm:"foreignKey:AdID;constraint:OnDelete:CASCADE"`
}
