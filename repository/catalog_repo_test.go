package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "payanam.app/errors"
	"payanam.app/models"
)

func TestCityRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCityRepository(db)

	jaipur := createTestCity(t, db, "Jaipur", "Rajasthan", "heritage", 4)
	createTestCity(t, db, "Jodhpur", "Rajasthan", "heritage", 3)
	createTestCity(t, db, "Goa", "Goa", "beach", 5)
	createTestActivity(t, db, jaipur.CityID, "Amber Fort", "heritage", 500, 4.7)
	createTestActivity(t, db, jaipur.CityID, "Hawa Mahal", "heritage", 200, 4.4)

	t.Run("NoFilters_PopularityOrder", func(t *testing.T) {
		cities, err := repo.List(models.CityQuery{}, 0)
		assert.NoError(t, err)
		require.Len(t, cities, 3)
		assert.Equal(t, "Goa", cities[0].Name)
		assert.Equal(t, "Jaipur", cities[1].Name)
		assert.Equal(t, "Jodhpur", cities[2].Name)
	})

	t.Run("FilterByState", func(t *testing.T) {
		cities, err := repo.List(models.CityQuery{State: "Rajasthan"}, 0)
		assert.NoError(t, err)
		assert.Len(t, cities, 2)
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		cities, err := repo.List(models.CityQuery{Category: "beach"}, 0)
		assert.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Goa", cities[0].Name)
	})

	t.Run("CaseInsensitiveSearch", func(t *testing.T) {
		cities, err := repo.List(models.CityQuery{Search: "jAi"}, 0)
		assert.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Jaipur", cities[0].Name)
	})

	t.Run("ActivityCountsFilled", func(t *testing.T) {
		cities, err := repo.List(models.CityQuery{State: "Rajasthan"}, 0)
		assert.NoError(t, err)
		byName := make(map[string]models.City)
		for _, c := range cities {
			byName[c.Name] = c
		}
		assert.Equal(t, 2, byName["Jaipur"].ActivityCount)
		assert.Equal(t, 0, byName["Jodhpur"].ActivityCount)
	})

	t.Run("LimitApplied", func(t *testing.T) {
		cities, err := repo.List(models.CityQuery{}, 2)
		assert.NoError(t, err)
		assert.Len(t, cities, 2)
	})
}

func TestCityRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCityRepository(db)

	createTestCity(t, db, "Jaipur", "Rajasthan", "heritage", 4)
	createTestCity(t, db, "Jodhpur", "Rajasthan", "heritage", 3)
	createTestCity(t, db, "Jaisalmer", "Rajasthan", "heritage", 2)

	t.Run("SubstringMatch_Capped", func(t *testing.T) {
		cities, err := repo.Search("ja", 2)
		assert.NoError(t, err)
		assert.Len(t, cities, 2)
		// Popularity descending
		assert.Equal(t, "Jaipur", cities[0].Name)
	})

	t.Run("NoMatch", func(t *testing.T) {
		cities, err := repo.Search("xyz", 10)
		assert.NoError(t, err)
		assert.Empty(t, cities)
	})
}

func TestCityRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCityRepository(db)
	created := createTestCity(t, db, "Varanasi", "Uttar Pradesh", "pilgrimage", 3)
	createTestActivity(t, db, created.CityID, "Ganga Aarti", "spiritual", 0, 4.8)

	t.Run("Found", func(t *testing.T) {
		city, err := repo.FindByID(created.CityID)
		assert.NoError(t, err)
		require.NotNil(t, city)
		assert.Equal(t, "Varanasi", city.Name)
		assert.Equal(t, 1, city.ActivityCount)
	})

	t.Run("NotFound", func(t *testing.T) {
		city, err := repo.FindByID("missing")
		assert.Error(t, err)
		assert.Nil(t, city)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})
}

func TestCityRepository_DeleteWithActivities(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCityRepository(db)

	city := createTestCity(t, db, "Munnar", "Kerala", "hill-station", 3)
	createTestActivity(t, db, city.CityID, "Tea Plantation Tour", "sightseeing", 300, 4.5)
	createTestActivity(t, db, city.CityID, "Eravikulam National Park", "adventure", 200, 4.4)

	kept := createTestCity(t, db, "Agra", "Uttar Pradesh", "heritage", 3)
	keptActivity := createTestActivity(t, db, kept.CityID, "Taj Mahal", "heritage", 1100, 4.9)

	err := repo.DeleteWithActivities(city)
	assert.NoError(t, err)

	var cityCount int64
	db.Model(&models.City{}).Where("city_id = ?", city.CityID).Count(&cityCount)
	assert.Zero(t, cityCount)

	var activityCount int64
	db.Model(&models.Activity{}).Where("city_id = ?", city.CityID).Count(&activityCount)
	assert.Zero(t, activityCount)

	var keptCount int64
	db.Model(&models.Activity{}).Where("activity_id = ?", keptActivity.ActivityID).Count(&keptCount)
	assert.Equal(t, int64(1), keptCount)
}

func TestActivityRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	jaipur := createTestCity(t, db, "Jaipur", "Rajasthan", "heritage", 4)
	goa := createTestCity(t, db, "Goa", "Goa", "beach", 5)
	createTestActivity(t, db, jaipur.CityID, "Amber Fort", "heritage", 500, 4.7)
	createTestActivity(t, db, jaipur.CityID, "Johari Bazaar Shopping", "shopping", 0, 4.2)
	createTestActivity(t, db, goa.CityID, "Dudhsagar Falls", "adventure", 1500, 4.6)

	t.Run("NoFilters_RatingOrder", func(t *testing.T) {
		activities, err := repo.List(models.ActivityQuery{}, 0)
		assert.NoError(t, err)
		require.Len(t, activities, 3)
		assert.Equal(t, "Amber Fort", activities[0].Name)
		assert.Equal(t, "Dudhsagar Falls", activities[1].Name)
		assert.Equal(t, "Johari Bazaar Shopping", activities[2].Name)
	})

	t.Run("FilterByCity", func(t *testing.T) {
		activities, err := repo.List(models.ActivityQuery{CityID: jaipur.CityID}, 0)
		assert.NoError(t, err)
		assert.Len(t, activities, 2)
	})

	t.Run("FilterByCostRange", func(t *testing.T) {
		minCost := 100.0
		maxCost := 1000.0
		activities, err := repo.List(models.ActivityQuery{MinCost: &minCost, MaxCost: &maxCost}, 0)
		assert.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "Amber Fort", activities[0].Name)
	})

	t.Run("InvertedCostRange", func(t *testing.T) {
		minCost := 1000.0
		maxCost := 100.0
		activities, err := repo.List(models.ActivityQuery{MinCost: &minCost, MaxCost: &maxCost}, 0)
		assert.Error(t, err)
		assert.Nil(t, activities)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("CityNamesFilled", func(t *testing.T) {
		activities, err := repo.List(models.ActivityQuery{CityID: goa.CityID}, 0)
		assert.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "Goa", activities[0].CityName)
		assert.Equal(t, "Goa", activities[0].CityState)
	})
}

func TestActivityRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	jaipur := createTestCity(t, db, "Jaipur", "Rajasthan", "heritage", 4)
	createTestActivity(t, db, jaipur.CityID, "Amber Fort", "heritage", 500, 4.7)
	createTestActivity(t, db, jaipur.CityID, "Nahargarh Fort", "sightseeing", 200, 4.3)
	createTestActivity(t, db, jaipur.CityID, "City Palace", "heritage", 500, 4.5)

	activities, err := repo.Search("fort", 10)
	assert.NoError(t, err)
	assert.Len(t, activities, 2)
	assert.Equal(t, "Amber Fort", activities[0].Name)
}

func TestActivityRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	jaipur := createTestCity(t, db, "Jaipur", "Rajasthan", "heritage", 4)
	created := createTestActivity(t, db, jaipur.CityID, "Amber Fort", "heritage", 500, 4.7)

	t.Run("Found", func(t *testing.T) {
		activity, err := repo.FindByID(created.ActivityID)
		assert.NoError(t, err)
		require.NotNil(t, activity)
		assert.Equal(t, "Amber Fort", activity.Name)
		assert.Equal(t, "Jaipur", activity.CityName)
	})

	t.Run("NotFound", func(t *testing.T) {
		activity, err := repo.FindByID("missing")
		assert.Error(t, err)
		assert.Nil(t, activity)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})
}
