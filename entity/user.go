package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

type User struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name              string    `json:"name" gorm:"type:varchar(255);not null"`
	Email             string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"type:varchar(255)"`
	IsVerified        bool      `json:"is_verified" gorm:"not null;default:false"`
	VerificationToken *string   `json:"-" gorm:"type:varchar(64);index"`
	AuthProvider      string    `json:"auth_provider" gorm:"type:varchar(32);not null;default:'local'"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}
