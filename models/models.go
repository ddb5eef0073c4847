// Package models defines data structures used throughout the application
package models

import (
	"time"
)

// User represents an account that owns zero or more trips
type User struct {
	UserID       string    `json:"user_id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	AvatarURL    string    `json:"avatar_url" gorm:"size:500"`
	LanguagePref string    `json:"language_pref" gorm:"size:10;default:en"`
	CreatedAt    time.Time `json:"created_at"`
}

// Trip represents a planned trip with its embedded itinerary document.
// ItineraryJSON holds the encoded document and is replaced wholesale on edit.
type Trip struct {
	TripID          string    `json:"trip_id" gorm:"primaryKey;size:36"`
	UserID          string    `json:"user_id" gorm:"size:36;index;not null"`
	TripName        string    `json:"trip_name" gorm:"size:200;not null"`
	TripDescription string    `json:"trip_description"`
	TripCategory    string    `json:"trip_category" gorm:"size:50"`
	CoverImage      string    `json:"cover_image" gorm:"size:500"`
	StartDate       string    `json:"start_date" gorm:"size:20;not null"`
	EndDate         string    `json:"end_date" gorm:"size:20;not null"`
	TotalBudget     float64   `json:"total_budget"`
	IsPublic        bool      `json:"is_public"`
	ShareCode       string    `json:"share_code" gorm:"size:20;uniqueIndex"`
	ItineraryJSON   string    `json:"itinerary_json" gorm:"column:itinerary_json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// City represents a catalog city with reference data for the itinerary builder
type City struct {
	CityID          string    `json:"city_id" gorm:"primaryKey;size:36"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	State           string    `json:"state" gorm:"size:100;not null;index"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"image_url" gorm:"size:500"`
	Category        string    `json:"category" gorm:"size:50;index"`
	PopularScore    int       `json:"popular_score"`
	AvgCostPerDay   float64   `json:"avg_cost_per_day"`
	BestTimeToVisit string    `json:"best_time_to_visit" gorm:"size:100"`
	CreatedAt       time.Time `json:"-"`
	ActivityCount   int       `json:"activity_count" gorm:"-"`
}

// Activity represents a catalog activity belonging to one city. It is a
// reference record, unrelated to the activity entries inside an itinerary.
type Activity struct {
	ActivityID    string    `json:"activity_id" gorm:"primaryKey;size:36"`
	CityID        string    `json:"city_id" gorm:"size:36;index;not null"`
	Name          string    `json:"name" gorm:"size:200;not null"`
	Description   string    `json:"description"`
	Category      string    `json:"category" gorm:"size:50;index"`
	EstimatedCost float64   `json:"estimated_cost"`
	DurationHours float64   `json:"duration_hours"`
	ImageURL      string    `json:"image_url" gorm:"size:500"`
	Rating        float64   `json:"rating"`
	Tips          string    `json:"tips"`
	CreatedAt     time.Time `json:"-"`

	// Denormalized for API responses, populated from the owning city.
	CityName  string `json:"city_name" gorm:"-"`
	CityState string `json:"state" gorm:"-"`
}

// CreateTripRequest represents data required to create a trip
type CreateTripRequest struct {
	TripName        string  `json:"trip_name" form:"trip_name" binding:"required"`
	TripDescription string  `json:"trip_description" form:"trip_description"`
	TripCategory    string  `json:"trip_category" form:"trip_category"`
	CoverImage      string  `json:"cover_image" form:"cover_image"`
	StartDate       string  `json:"start_date" form:"start_date" binding:"required"`
	EndDate         string  `json:"end_date" form:"end_date" binding:"required"`
	TotalBudget     float64 `json:"total_budget" form:"total_budget"`
}

// UpdateTripRequest is a partial metadata patch; nil fields are left unchanged
type UpdateTripRequest struct {
	TripName        *string  `json:"trip_name"`
	TripDescription *string  `json:"trip_description"`
	TripCategory    *string  `json:"trip_category"`
	CoverImage      *string  `json:"cover_image"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	TotalBudget     *float64 `json:"total_budget"`
	IsPublic        *bool    `json:"is_public"`
}

// UpdateBudgetRequest updates only the trip's total budget
type UpdateBudgetRequest struct {
	TotalBudget *float64 `json:"total_budget" binding:"required"`
}

// RegisterUserRequest represents data required to create an account
type RegisterUserRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"required,email"`
}

// UpdateUserRequest is a partial profile patch; nil fields are left unchanged
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	AvatarURL    *string `json:"avatar_url"`
	LanguagePref *string `json:"language_pref"`
}

// CityQuery holds catalog city filters
type CityQuery struct {
	State    string `form:"state"`
	Category string `form:"category"`
	Search   string `form:"q"`
}

// ActivityQuery holds catalog activity filters
type ActivityQuery struct {
	CityID   string   `form:"city_id"`
	Category string   `form:"category"`
	Search   string   `form:"q"`
	MinCost  *float64 `form:"min_cost"`
	MaxCost  *float64 `form:"max_cost"`
}

// TripBudget is one entry of the analytics per-trip budget list, in trip order
type TripBudget struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

// AnalyticsSummary represents aggregate statistics over a user's trips
type AnalyticsSummary struct {
	TotalTrips    int            `json:"total_trips"`
	TotalBudget   float64        `json:"total_budget"`
	CityVisits    map[string]int `json:"city_visits"`
	ActivityTypes map[string]int `json:"activity_types"`
	CategoryCount map[string]int `json:"category_count"`
	MonthlyTrips  map[string]int `json:"monthly_trips"`
	BudgetByTrip  []TripBudget   `json:"budget_by_trip"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
