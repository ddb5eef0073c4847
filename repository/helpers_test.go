package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"payanam.app/models"
)

// Setup test database with in-memory SQLite
func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique database for each test to avoid data pollution
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Trip{}, &models.City{}, &models.Activity{})
	assert.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		UserID:       uuid.NewString(),
		Name:         "Test Traveller",
		Email:        email,
		LanguagePref: "en",
	}
	result := db.Create(user)
	assert.NoError(t, result.Error)
	return user
}

func createTestTrip(t *testing.T, db *gorm.DB, userID, name string) *models.Trip {
	trip := &models.Trip{
		TripID:        uuid.NewString(),
		UserID:        userID,
		TripName:      name,
		TripCategory:  "leisure",
		StartDate:     "2026-02-01",
		EndDate:       "2026-02-10",
		ShareCode:     uuid.NewString()[:8],
		ItineraryJSON: `{"stops":[]}`,
	}
	result := db.Create(trip)
	assert.NoError(t, result.Error)
	return trip
}

func createTestCity(t *testing.T, db *gorm.DB, name, state, category string, score int) *models.City {
	city := &models.City{
		CityID:       uuid.NewString(),
		Name:         name,
		State:        state,
		Category:     category,
		PopularScore: score,
	}
	result := db.Create(city)
	assert.NoError(t, result.Error)
	return city
}

func createTestActivity(t *testing.T, db *gorm.DB, cityID, name, category string, cost, rating float64) *models.Activity {
	activity := &models.Activity{
		ActivityID:    uuid.NewString(),
		CityID:        cityID,
		Name:          name,
		Category:      category,
		EstimatedCost: cost,
		Rating:        rating,
	}
	result := db.Create(activity)
	assert.NoError(t, result.Error)
	return activity
}
