package repository

import (
	stderrors "errors"
	"log"
	"strings"

	"gorm.io/gorm"
	"payanam.app/errors"
	"payanam.app/models"
)

// CityRepository handles data access operations for catalog cities
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new repository for city reference data
func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// FindByID retrieves a city by its ID
func (r *CityRepository) FindByID(cityID string) (*models.City, error) {
	log.Printf("[DEBUG] CityRepository.FindByID: id=%s\n", cityID)

	if cityID == "" {
		return nil, errors.NewValidationError("city ID cannot be empty")
	}

	var city models.City
	result := r.db.Where("city_id = ?", cityID).First(&city)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("city not found")
		}
		log.Printf("[ERROR] Database error when finding city by ID: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to find city", result.Error)
	}

	if err := r.fillActivityCounts([]*models.City{&city}); err != nil {
		return nil, err
	}
	return &city, nil
}

// List retrieves cities matching the given filters, most popular first
func (r *CityRepository) List(q models.CityQuery, limit int) ([]models.City, error) {
	log.Printf("[DEBUG] CityRepository.List: state=%s, category=%s, q=%s\n", q.State, q.Category, q.Search)

	query := r.db.Model(&models.City{}).Order("popular_score DESC")
	if q.State != "" {
		query = query.Where("state = ?", q.State)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var cities []models.City
	result := query.Find(&cities)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing cities: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to list cities", result.Error)
	}

	refs := make([]*models.City, len(cities))
	for i := range cities {
		refs[i] = &cities[i]
	}
	if err := r.fillActivityCounts(refs); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Found %d cities\n", len(cities))
	return cities, nil
}

// Search performs a case-insensitive name prefix/substring match for
// autocomplete, capped to limit results
func (r *CityRepository) Search(term string, limit int) ([]models.City, error) {
	log.Printf("[DEBUG] CityRepository.Search: term=%s, limit=%d\n", term, limit)

	var cities []models.City
	result := r.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("popular_score DESC").
		Limit(limit).
		Find(&cities)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when searching cities: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to search cities", result.Error)
	}

	return cities, nil
}

// DeleteWithActivities removes a city and its activities in one transaction
func (r *CityRepository) DeleteWithActivities(city *models.City) error {
	log.Printf("[DEBUG] CityRepository.DeleteWithActivities: id=%s\n", city.CityID)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("city_id = ?", city.CityID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Delete(city).Error
	})
	if err != nil {
		log.Printf("[ERROR] Database error when deleting city with activities: %v\n", err)
		return errors.NewDatabaseError("failed to delete city", err)
	}

	log.Println("[DEBUG] Deleted city and its activities successfully")
	return nil
}

type activityCount struct {
	CityID string
	Count  int
}

func (r *CityRepository) fillActivityCounts(cities []*models.City) error {
	if len(cities) == 0 {
		return nil
	}

	ids := make([]string, len(cities))
	for i, city := range cities {
		ids[i] = city.CityID
	}

	var counts []activityCount
	result := r.db.Model(&models.Activity{}).
		Select("city_id, COUNT(*) as count").
		Where("city_id IN ?", ids).
		Group("city_id").
		Scan(&counts)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when counting activities: %v\n", result.Error)
		return errors.NewDatabaseError("failed to count activities", result.Error)
	}

	byCity := make(map[string]int, len(counts))
	for _, c := range counts {
		byCity[c.CityID] = c.Count
	}
	for _, city := range cities {
		city.ActivityCount = byCity[city.CityID]
	}
	return nil
}

// ActivityRepository handles data access operations for catalog activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new repository for activity reference data
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// FindByID retrieves an activity by its ID
func (r *ActivityRepository) FindByID(activityID string) (*models.Activity, error) {
	log.Printf("[DEBUG] ActivityRepository.FindByID: id=%s\n", activityID)

	if activityID == "" {
		return nil, errors.NewValidationError("activity ID cannot be empty")
	}

	var activity models.Activity
	result := r.db.Where("activity_id = ?", activityID).First(&activity)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("activity not found")
		}
		log.Printf("[ERROR] Database error when finding activity by ID: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to find activity", result.Error)
	}

	if err := r.fillCityNames([]*models.Activity{&activity}); err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves activities matching the given filters, best rated first
func (r *ActivityRepository) List(q models.ActivityQuery, limit int) ([]models.Activity, error) {
	log.Printf("[DEBUG] ActivityRepository.List: city=%s, category=%s, q=%s\n", q.CityID, q.Category, q.Search)

	if q.MinCost != nil && q.MaxCost != nil && *q.MinCost > *q.MaxCost {
		return nil, errors.NewValidationError("min_cost cannot exceed max_cost")
	}

	query := r.db.Model(&models.Activity{}).Order("rating DESC")
	if q.CityID != "" {
		query = query.Where("city_id = ?", q.CityID)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if q.MinCost != nil {
		query = query.Where("estimated_cost >= ?", *q.MinCost)
	}
	if q.MaxCost != nil {
		query = query.Where("estimated_cost <= ?", *q.MaxCost)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []models.Activity
	result := query.Find(&activities)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing activities: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to list activities", result.Error)
	}

	refs := make([]*models.Activity, len(activities))
	for i := range activities {
		refs[i] = &activities[i]
	}
	if err := r.fillCityNames(refs); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Found %d activities\n", len(activities))
	return activities, nil
}

// Search performs a case-insensitive name match for autocomplete, capped to
// limit results
func (r *ActivityRepository) Search(term string, limit int) ([]models.Activity, error) {
	log.Printf("[DEBUG] ActivityRepository.Search: term=%s, limit=%d\n", term, limit)

	var activities []models.Activity
	result := r.db.
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("rating DESC").
		Limit(limit).
		Find(&activities)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when searching activities: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to search activities", result.Error)
	}

	refs := make([]*models.Activity, len(activities))
	for i := range activities {
		refs[i] = &activities[i]
	}
	if err := r.fillCityNames(refs); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *ActivityRepository) fillCityNames(activities []*models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	ids := make([]string, 0, len(activities))
	seen := make(map[string]bool)
	for _, activity := range activities {
		if !seen[activity.CityID] {
			seen[activity.CityID] = true
			ids = append(ids, activity.CityID)
		}
	}

	var cities []models.City
	result := r.db.Where("city_id IN ?", ids).Find(&cities)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when loading cities for activities: %v\n", result.Error)
		return errors.NewDatabaseError("failed to load cities for activities", result.Error)
	}

	byID := make(map[string]models.City, len(cities))
	for _, city := range cities {
		byID[city.CityID] = city
	}
	for _, activity := range activities {
		if city, ok := byID[activity.CityID]; ok {
			activity.CityName = city.Name
			activity.CityState = city.State
		}
	}
	return nil
}
