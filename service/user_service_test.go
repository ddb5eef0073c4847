package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "payanam.app/errors"
	"payanam.app/models"
	"payanam.app/repository"
)

func TestUserService_Register(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(repository.NewUserRepository(db))

	t.Run("Valid", func(t *testing.T) {
		user, err := service.Register(&models.RegisterUserRequest{
			Name:  "Asha",
			Email: "asha@example.com",
		})
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEmpty(t, user.UserID)
		assert.Equal(t, "en", user.LanguagePref)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := service.Register(&models.RegisterUserRequest{
			Name:  "Asha Again",
			Email: "asha@example.com",
		})
		assertErrorType(t, err, apperrors.AlreadyExistsError)
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := service.Register(&models.RegisterUserRequest{Email: "noname@example.com"})
		assertErrorType(t, err, apperrors.ValidationError)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		_, err := service.Register(&models.RegisterUserRequest{Name: "Bad", Email: "not-an-email"})
		assertErrorType(t, err, apperrors.ValidationError)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(repository.NewUserRepository(db))
	user := registerUser(t, db, "profile@example.com")

	t.Run("Found", func(t *testing.T) {
		got, err := service.GetProfile(user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("Anonymous", func(t *testing.T) {
		_, err := service.GetProfile("")
		assertErrorType(t, err, apperrors.AuthorizationError)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := service.GetProfile("missing")
		assertErrorType(t, err, apperrors.NotFoundError)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(repository.NewUserRepository(db))
	user := registerUser(t, db, "update@example.com")

	t.Run("PartialPatch", func(t *testing.T) {
		lang := "hi"
		updated, err := service.UpdateProfile(user.UserID, &models.UpdateUserRequest{
			LanguagePref: &lang,
		})
		assert.NoError(t, err)
		assert.Equal(t, "hi", updated.LanguagePref)
		assert.Equal(t, "Traveller", updated.Name)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		name := ""
		_, err := service.UpdateProfile(user.UserID, &models.UpdateUserRequest{Name: &name})
		assertErrorType(t, err, apperrors.ValidationError)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(repository.NewUserRepository(db))
	tripService := newTripService(db)
	user := registerUser(t, db, "delete@example.com")

	_, err := tripService.CreateTrip(user.UserID, validCreateRequest())
	require.NoError(t, err)

	err = userService.DeleteAccount(user.UserID)
	assert.NoError(t, err)

	_, err = userService.GetProfile(user.UserID)
	assertErrorType(t, err, apperrors.NotFoundError)

	var tripCount int64
	db.Model(&models.Trip{}).Where("user_id = ?", user.UserID).Count(&tripCount)
	assert.Zero(t, tripCount)
}
