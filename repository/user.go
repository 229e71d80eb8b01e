package repository

import (
	"github.com/feedhub/feedhub-service/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByVerificationToken(token string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("verification_token = ?", token).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarkVerified flips the verification flag and nulls the token so the link
// cannot be reused.
func (r *UserRepository) MarkVerified(id uuid.UUID) error {
	return r.db.Model(&entity.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified":        true,
			"verification_token": nil,
		}).Error
}
