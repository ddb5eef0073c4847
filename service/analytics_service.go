package service

import (
	"log"

	"payanam.app/errors"
	"payanam.app/itinerary"
	"payanam.app/models"
)

// AnalyticsService derives summary statistics over a user's trips
type AnalyticsService struct {
	tripRepo TripRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(tripRepo TripRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{tripRepo: tripRepo}
}

// Summarize loads all of the user's trips and aggregates them
func (s *AnalyticsService) Summarize(userID string) (*models.AnalyticsSummary, error) {
	log.Printf("[DEBUG] AnalyticsService.Summarize: user=%s\n", userID)

	if userID == "" {
		return nil, errors.NewAuthorizationError("caller identity is required")
	}

	trips, err := s.tripRepo.FindByUserID(userID, 0)
	if err != nil {
		return nil, err
	}

	return Aggregate(trips), nil
}

// Aggregate folds a sequence of trips into an analytics summary. It is a pure
// function of its input: the four count mappings are independent of trip
// order, while the per-trip budget list preserves input order. Each trip's
// itinerary is decoded leniently, so malformed documents contribute nothing
// instead of failing the aggregation.
func Aggregate(trips []models.Trip) *models.AnalyticsSummary {
	summary := &models.AnalyticsSummary{
		TotalTrips:    len(trips),
		CityVisits:    map[string]int{},
		ActivityTypes: map[string]int{},
		CategoryCount: map[string]int{},
		MonthlyTrips:  map[string]int{},
		BudgetByTrip:  []models.TripBudget{},
	}

	for _, trip := range trips {
		summary.TotalBudget += trip.TotalBudget
		summary.CategoryCount[trip.TripCategory]++
		summary.BudgetByTrip = append(summary.BudgetByTrip, models.TripBudget{
			Name:   trip.TripName,
			Budget: trip.TotalBudget,
		})

		if !trip.CreatedAt.IsZero() {
			summary.MonthlyTrips[trip.CreatedAt.Format("2006-01")]++
		}

		doc := itinerary.Decode(trip.ItineraryJSON)
		for _, stop := range doc.Stops {
			city := stop.CityName
			if city == "" {
				city = "Unknown"
			}
			// Counts stop occurrences: the same city twice in one trip counts twice.
			summary.CityVisits[city]++

			for _, day := range stop.Days {
				for _, activity := range day.Activities {
					category := activity.Category
					if category == "" {
						category = "other"
					}
					summary.ActivityTypes[category]++
				}
			}
		}
	}

	return summary
}
