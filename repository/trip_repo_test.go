package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "payanam.app/errors"
	"payanam.app/models"
)

func TestTripRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	t.Run("AllocatesIDAndShareCode", func(t *testing.T) {
		trip := &models.Trip{
			UserID:    user.UserID,
			TripName:  "Rajasthan Heritage Tour",
			StartDate: "2026-02-01",
			EndDate:   "2026-02-10",
		}

		err := repo.Create(trip)
		assert.NoError(t, err)
		assert.NotEmpty(t, trip.TripID)
		assert.Len(t, trip.ShareCode, 8)
		assert.Equal(t, `{"stops":[]}`, trip.ItineraryJSON)

		var dbTrip models.Trip
		result := db.Where("trip_id = ?", trip.TripID).First(&dbTrip)
		assert.NoError(t, result.Error)
		assert.Equal(t, "Rajasthan Heritage Tour", dbTrip.TripName)
	})

	t.Run("PreservesProvidedItinerary", func(t *testing.T) {
		raw := `{"stops":[{"city_name":"Jaipur"}]}`
		trip := &models.Trip{
			UserID:        user.UserID,
			TripName:      "Copy of Rajasthan Heritage Tour",
			StartDate:     "2026-02-01",
			EndDate:       "2026-02-10",
			ItineraryJSON: raw,
		}

		err := repo.Create(trip)
		assert.NoError(t, err)
		assert.Equal(t, raw, trip.ItineraryJSON)
	})

	t.Run("ShareCodesAreUnique", func(t *testing.T) {
		codes := make(map[string]bool)
		for i := 0; i < 10; i++ {
			trip := &models.Trip{
				UserID:    user.UserID,
				TripName:  "Trip",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-05",
			}
			require.NoError(t, repo.Create(trip))
			assert.False(t, codes[trip.ShareCode])
			codes[trip.ShareCode] = true
		}
	})
}

func TestTripRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	t.Run("ValidID_Found", func(t *testing.T) {
		created := createTestTrip(t, db, user.UserID, "Goa Getaway")

		trip, err := repo.FindByID(created.TripID)
		assert.NoError(t, err)
		assert.NotNil(t, trip)
		assert.Equal(t, "Goa Getaway", trip.TripName)
	})

	t.Run("ValidID_NotFound", func(t *testing.T) {
		trip, err := repo.FindByID("does-not-exist")
		assert.Error(t, err)
		assert.Nil(t, trip)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("EmptyID", func(t *testing.T) {
		trip, err := repo.FindByID("")
		assert.Error(t, err)
		assert.Nil(t, trip)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
		assert.Contains(t, appErr.Message, "trip ID cannot be empty")
	})
}

func TestTripRepository_FindPublicByShareCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	user := createTestUser(t, db, "owner@example.com")

	t.Run("PublicTrip_Found", func(t *testing.T) {
		trip := createTestTrip(t, db, user.UserID, "Public Trip")
		trip.IsPublic = true
		require.NoError(t, db.Save(trip).Error)

		found, err := repo.FindPublicByShareCode(trip.ShareCode)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, trip.TripID, found.TripID)
	})

	t.Run("PrivateTrip_NotFound", func(t *testing.T) {
		trip := createTestTrip(t, db, user.UserID, "Private Trip")

		found, err := repo.FindPublicByShareCode(trip.ShareCode)
		assert.Error(t, err)
		assert.Nil(t, found)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("UnknownCode_NotFound", func(t *testing.T) {
		found, err := repo.FindPublicByShareCode("zzzzzzzz")
		assert.Error(t, err)
		assert.Nil(t, found)
	})
}

func TestTripRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	first := createTestTrip(t, db, user.UserID, "First Trip")
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-2*time.Hour)).Error)
	second := createTestTrip(t, db, user.UserID, "Second Trip")
	require.NoError(t, db.Model(second).Update("created_at", time.Now().Add(-1*time.Hour)).Error)
	createTestTrip(t, db, other.UserID, "Someone Else's Trip")

	t.Run("NewestFirst", func(t *testing.T) {
		trips, err := repo.FindByUserID(user.UserID, 0)
		assert.NoError(t, err)
		assert.Len(t, trips, 2)
		assert.Equal(t, "Second Trip", trips[0].TripName)
		assert.Equal(t, "First Trip", trips[1].TripName)
	})

	t.Run("LimitApplied", func(t *testing.T) {
		trips, err := repo.FindByUserID(user.UserID, 1)
		assert.NoError(t, err)
		assert.Len(t, trips, 1)
		assert.Equal(t, "Second Trip", trips[0].TripName)
	})

	t.Run("NoTrips", func(t *testing.T) {
		lonely := createTestUser(t, db, "lonely@example.com")
		trips, err := repo.FindByUserID(lonely.UserID, 0)
		assert.NoError(t, err)
		assert.Empty(t, trips)
	})
}

func TestTripRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	trip := createTestTrip(t, db, user.UserID, "Before")

	trip.TripName = "After"
	trip.ItineraryJSON = `{"stops":[{"city_name":"Agra"}]}`
	err := repo.Update(trip)
	assert.NoError(t, err)

	var dbTrip models.Trip
	require.NoError(t, db.Where("trip_id = ?", trip.TripID).First(&dbTrip).Error)
	assert.Equal(t, "After", dbTrip.TripName)
	assert.Equal(t, `{"stops":[{"city_name":"Agra"}]}`, dbTrip.ItineraryJSON)
}

func TestTripRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTripRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	trip := createTestTrip(t, db, user.UserID, "Doomed Trip")

	err := repo.Delete(trip)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Trip{}).Where("trip_id = ?", trip.TripID).Count(&count)
	assert.Zero(t, count)
}
