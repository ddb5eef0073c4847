package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"payanam.app/config"
	"payanam.app/metrics"
	"payanam.app/models"
	"payanam.app/providers/cache"
)

// CatalogService handles read-only catalog queries. List and search results
// are fronted by a TTL cache; the catalog is read-mostly and seeded in bulk,
// so short staleness is acceptable.
type CatalogService struct {
	cityRepo     CityRepositoryInterface
	activityRepo ActivityRepositoryInterface
	cache        cache.GenericCacheInterface
	catalogCfg   config.CatalogConfig
	ttl          time.Duration
}

// NewCatalogService creates a new catalog service. A nil cache disables
// caching.
func NewCatalogService(
	cityRepo CityRepositoryInterface,
	activityRepo ActivityRepositoryInterface,
	cacheProvider cache.GenericCacheInterface,
	cfg *config.Config,
) *CatalogService {
	return &CatalogService{
		cityRepo:     cityRepo,
		activityRepo: activityRepo,
		cache:        cacheProvider,
		catalogCfg:   cfg.Catalog,
		ttl:          time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
	}
}

// ListCities retrieves cities matching the filters, most popular first
func (s *CatalogService) ListCities(q models.CityQuery) ([]models.City, error) {
	key := fmt.Sprintf("catalog:cities:state=%s:category=%s:q=%s", q.State, q.Category, strings.ToLower(q.Search))

	var cities []models.City
	if s.cacheGet(key, &cities) {
		return cities, nil
	}

	cities, err := s.cityRepo.List(q, s.catalogCfg.MaxResultsPerQuery)
	if err != nil {
		return nil, err
	}

	s.cacheSet(key, cities)
	return cities, nil
}

// GetCity retrieves a single city with its activity count
func (s *CatalogService) GetCity(cityID string) (*models.City, error) {
	return s.cityRepo.FindByID(cityID)
}

// SearchCities is the autocomplete variant: it requires a minimum query
// length, below which it returns an empty result instead of scanning the
// whole catalog, and caps the result count.
func (s *CatalogService) SearchCities(term string) ([]models.City, error) {
	term = strings.TrimSpace(term)
	if len(term) < s.catalogCfg.MinSearchLength {
		return []models.City{}, nil
	}

	key := fmt.Sprintf("catalog:cities:search:%s", strings.ToLower(term))

	var cities []models.City
	if s.cacheGet(key, &cities) {
		return cities, nil
	}

	cities, err := s.cityRepo.Search(term, s.catalogCfg.AutocompleteLimit)
	if err != nil {
		return nil, err
	}

	s.cacheSet(key, cities)
	return cities, nil
}

// ListActivities retrieves activities matching the filters, best rated first
func (s *CatalogService) ListActivities(q models.ActivityQuery) ([]models.Activity, error) {
	key := fmt.Sprintf("catalog:activities:city=%s:category=%s:q=%s:min=%s:max=%s",
		q.CityID, q.Category, strings.ToLower(q.Search), floatKey(q.MinCost), floatKey(q.MaxCost))

	var activities []models.Activity
	if s.cacheGet(key, &activities) {
		return activities, nil
	}

	activities, err := s.activityRepo.List(q, s.catalogCfg.MaxResultsPerQuery)
	if err != nil {
		return nil, err
	}

	s.cacheSet(key, activities)
	return activities, nil
}

// GetActivity retrieves a single activity with its city names filled
func (s *CatalogService) GetActivity(activityID string) (*models.Activity, error) {
	return s.activityRepo.FindByID(activityID)
}

// SearchActivities is the autocomplete variant for activities
func (s *CatalogService) SearchActivities(term string) ([]models.Activity, error) {
	term = strings.TrimSpace(term)
	if len(term) < s.catalogCfg.MinSearchLength {
		return []models.Activity{}, nil
	}

	key := fmt.Sprintf("catalog:activities:search:%s", strings.ToLower(term))

	var activities []models.Activity
	if s.cacheGet(key, &activities) {
		return activities, nil
	}

	activities, err := s.activityRepo.Search(term, s.catalogCfg.AutocompleteLimit)
	if err != nil {
		return nil, err
	}

	s.cacheSet(key, activities)
	return activities, nil
}

func (s *CatalogService) cacheGet(key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}

	metrics.RecordCacheRequest("catalog")

	data, found := s.cache.Get(context.Background(), key)
	if !found {
		metrics.RecordCacheMiss("catalog")
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[ERROR] Failed to decode cached catalog entry: %v\n", err)
		metrics.RecordCacheMiss("catalog")
		return false
	}

	metrics.RecordCacheHit("catalog")
	return true
}

func (s *CatalogService) cacheSet(key string, value interface{}) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[ERROR] Failed to encode catalog entry for cache: %v\n", err)
		return
	}

	s.cache.Set(context.Background(), key, data, s.ttl)
}

func floatKey(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}
