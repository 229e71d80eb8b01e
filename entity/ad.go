package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ad struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Category    string    `json:"category" gorm:"type:varchar(64);not null;index"`
	SubCategory string    `json:"sub_category" gorm:"type:varchar(64);not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Price       float64   `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;autoCreateTime;index"`

	Media []Media `json:"media" gorm:"foreignKey:AdID;constraint:OnDelete:CASCADE"`
}
