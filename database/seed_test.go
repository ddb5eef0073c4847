package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"payanam.app/models"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = RunMigrations(db)
	require.NoError(t, err)

	return db
}

func TestSeedCatalog(t *testing.T) {
	t.Run("PopulatesEmptyCatalog", func(t *testing.T) {
		db := setupSeedTestDB(t)

		err := SeedCatalog(db)
		assert.NoError(t, err)

		var cityCount, activityCount int64
		db.Model(&models.City{}).Count(&cityCount)
		db.Model(&models.Activity{}).Count(&activityCount)

		assert.Equal(t, int64(len(catalogSeed)), cityCount)
		assert.Greater(t, activityCount, cityCount)
	})

	t.Run("SecondRunIsNoOp", func(t *testing.T) {
		db := setupSeedTestDB(t)

		require.NoError(t, SeedCatalog(db))

		var before int64
		db.Model(&models.Activity{}).Count(&before)

		assert.NoError(t, SeedCatalog(db))

		var after int64
		db.Model(&models.Activity{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("SkipsWhenCitiesExist", func(t *testing.T) {
		db := setupSeedTestDB(t)

		require.NoError(t, db.Create(&models.City{
			CityID: "manual-city",
			Name:   "Manual",
			State:  "Somewhere",
		}).Error)

		assert.NoError(t, SeedCatalog(db))

		var count int64
		db.Model(&models.City{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("PopularScoreMatchesActivityCount", func(t *testing.T) {
		db := setupSeedTestDB(t)
		require.NoError(t, SeedCatalog(db))

		var cities []models.City
		require.NoError(t, db.Find(&cities).Error)

		for _, city := range cities {
			var activityCount int64
			db.Model(&models.Activity{}).Where("city_id = ?", city.CityID).Count(&activityCount)
			assert.Equal(t, int64(city.PopularScore), activityCount, "city %s", city.Name)
		}
	})
}
