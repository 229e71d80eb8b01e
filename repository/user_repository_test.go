package repository

import (
	"testing"

	"github.com/feedhub/feedhub-service/entity"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)

	user := &entity.User{
		Name:         "Jordan",
		Email:        "jordan@example.com",
		PasswordHash: "hash",
		AuthProvider: entity.AuthProviderLocal,
	}
	assert.NoError(t, r.Create(user))

	got, err := r.FindByEmail("jordan@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Email is unique.
	err = r.Create(&entity.User{Name: "Other", Email: "jordan@example.com", AuthProvider: entity.AuthProviderLocal})
	assert.Error(t, err)

	_, err = r.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_VerificationTokenIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)

	token := "aabbccddeeff00112233445566778899aabbccddeeff00112233445566778899"
	user := &entity.User{
		Name:              "Sam",
		Email:             "sam@example.com",
		PasswordHash:      "hash",
		VerificationToken: &token,
		AuthProvider:      entity.AuthProviderLocal,
	}
	assert.NoError(t, r.Create(user))

	found, err := r.FindByVerificationToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.False(t, found.IsVerified)

	assert.NoError(t, r.MarkVerified(found.ID))

	verified, err := r.FindByID(found.ID)
	assert.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationToken)

	// The consumed link no longer resolves.
	_, err = r.FindByVerificationToken(token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
