package service

import (
	"payanam.app/itinerary"
	"payanam.app/models"
)

// TripServiceInterface defines trip lifecycle and sharing operations. Every
// operation takes the caller's user id explicitly; there is no ambient
// identity state.
type TripServiceInterface interface {
	CreateTrip(ownerID string, req *models.CreateTripRequest) (*models.Trip, error)
	GetTrip(tripID, callerID string) (*models.Trip, error)
	ListTrips(ownerID string, limit int) ([]models.Trip, error)
	UpdateMetadata(tripID, callerID string, patch *models.UpdateTripRequest) (*models.Trip, error)
	UpdateBudget(tripID, callerID string, totalBudget float64) (*models.Trip, error)
	GetItinerary(tripID, callerID string) (itinerary.Document, error)
	ReplaceItinerary(tripID, callerID string, doc itinerary.Document) error
	ToggleVisibility(tripID, callerID string) (*models.Trip, error)
	DeleteTrip(tripID, callerID string) error
	GetSharedTrip(shareCode string) (*models.Trip, error)
	CopySharedTrip(shareCode, newOwnerID string) (*models.Trip, error)
}

// CatalogServiceInterface defines read-only queries over the city/activity
// reference data
type CatalogServiceInterface interface {
	ListCities(q models.CityQuery) ([]models.City, error)
	GetCity(cityID string) (*models.City, error)
	SearchCities(term string) ([]models.City, error)
	ListActivities(q models.ActivityQuery) ([]models.Activity, error)
	GetActivity(activityID string) (*models.Activity, error)
	SearchActivities(term string) ([]models.Activity, error)
}

// AnalyticsServiceInterface derives summary statistics over a user's trips
type AnalyticsServiceInterface interface {
	Summarize(userID string) (*models.AnalyticsSummary, error)
}

// UserServiceInterface defines account operations
type UserServiceInterface interface {
	Register(req *models.RegisterUserRequest) (*models.User, error)
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, patch *models.UpdateUserRequest) (*models.User, error)
	DeleteAccount(userID string) error
}

// TripRepositoryInterface defines the interface for trip data operations
type TripRepositoryInterface interface {
	Create(trip *models.Trip) error
	FindByID(tripID string) (*models.Trip, error)
	FindPublicByShareCode(shareCode string) (*models.Trip, error)
	FindByUserID(userID string, limit int) ([]models.Trip, error)
	Update(trip *models.Trip) error
	Delete(trip *models.Trip) error
}

// UserRepositoryInterface defines the interface for user data operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByID(userID string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	DeleteWithTrips(user *models.User) error
}

// CityRepositoryInterface defines the interface for city reference data
type CityRepositoryInterface interface {
	FindByID(cityID string) (*models.City, error)
	List(q models.CityQuery, limit int) ([]models.City, error)
	Search(term string, limit int) ([]models.City, error)
	DeleteWithActivities(city *models.City) error
}

// ActivityRepositoryInterface defines the interface for activity reference data
type ActivityRepositoryInterface interface {
	FindByID(activityID string) (*models.Activity, error)
	List(q models.ActivityQuery, limit int) ([]models.Activity, error)
	Search(term string, limit int) ([]models.Activity, error)
}

// Ensure implementations satisfy interfaces
var _ TripServiceInterface = (*TripService)(nil)
var _ CatalogServiceInterface = (*CatalogService)(nil)
var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
var _ UserServiceInterface = (*UserService)(nil)
