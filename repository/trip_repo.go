package repository

import (
	stderrors "errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"payanam.app/errors"
	"payanam.app/itinerary"
	"payanam.app/models"
)

// shareCodeAttempts bounds retries when a generated code collides with the
// unique index.
const shareCodeAttempts = 5

// TripRepository handles data access operations for trips
type TripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new repository for trip data
func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create persists a new trip, allocating an id and a unique share code when
// none are set. An empty itinerary column is initialized to the canonical
// empty document.
func (r *TripRepository) Create(trip *models.Trip) error {
	log.Printf("[DEBUG] TripRepository.Create: name=%s, owner=%s\n", trip.TripName, trip.UserID)

	if trip.TripID == "" {
		trip.TripID = uuid.NewString()
	}
	if trip.ItineraryJSON == "" {
		trip.ItineraryJSON = itinerary.Encode(itinerary.Empty())
	}
	if trip.ShareCode == "" {
		code, err := r.generateShareCode()
		if err != nil {
			return err
		}
		trip.ShareCode = code
	}

	result := r.db.Create(trip)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating trip: %v\n", result.Error)
		return errors.NewDatabaseError("failed to create trip", result.Error)
	}

	log.Printf("[DEBUG] Created trip with ID: %s, share code: %s\n", trip.TripID, trip.ShareCode)
	return nil
}

// generateShareCode produces an 8-character URL-safe token not yet in use
func (r *TripRepository) generateShareCode() (string, error) {
	for i := 0; i < shareCodeAttempts; i++ {
		code := uuid.NewString()[:8]

		var count int64
		if err := r.db.Model(&models.Trip{}).Where("share_code = ?", code).Count(&count).Error; err != nil {
			return "", errors.NewDatabaseError("failed to check share code uniqueness", err)
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.NewDatabaseError("failed to allocate unique share code", nil)
}

// FindByID retrieves a trip by its ID
func (r *TripRepository) FindByID(tripID string) (*models.Trip, error) {
	log.Printf("[DEBUG] TripRepository.FindByID: id=%s\n", tripID)

	if tripID == "" {
		return nil, errors.NewValidationError("trip ID cannot be empty")
	}

	var trip models.Trip
	result := r.db.Where("trip_id = ?", tripID).First(&trip)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("trip not found")
		}
		log.Printf("[ERROR] Database error when finding trip by ID: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to find trip", result.Error)
	}

	return &trip, nil
}

// FindPublicByShareCode retrieves a public trip by its share code. Private
// trips are invisible through this lookup regardless of the code.
func (r *TripRepository) FindPublicByShareCode(shareCode string) (*models.Trip, error) {
	log.Printf("[DEBUG] TripRepository.FindPublicByShareCode: code=%s\n", shareCode)

	if shareCode == "" {
		return nil, errors.NewValidationError("share code cannot be empty")
	}

	var trip models.Trip
	result := r.db.Where("share_code = ? AND is_public = ?", shareCode, true).First(&trip)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("shared trip not found")
		}
		log.Printf("[ERROR] Database error when finding trip by share code: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to find shared trip", result.Error)
	}

	return &trip, nil
}

// FindByUserID retrieves a user's trips ordered by creation time, newest
// first. A non-positive limit returns all trips.
func (r *TripRepository) FindByUserID(userID string, limit int) ([]models.Trip, error) {
	log.Printf("[DEBUG] TripRepository.FindByUserID: user=%s, limit=%d\n", userID, limit)

	if userID == "" {
		return nil, errors.NewValidationError("user ID cannot be empty")
	}

	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var trips []models.Trip
	result := query.Find(&trips)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing trips: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to list trips", result.Error)
	}

	log.Printf("[DEBUG] Found %d trips for user %s\n", len(trips), userID)
	return trips, nil
}

// Update modifies an existing trip and refreshes its updated timestamp
func (r *TripRepository) Update(trip *models.Trip) error {
	log.Printf("[DEBUG] TripRepository.Update: id=%s\n", trip.TripID)

	result := r.db.Save(trip)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when updating trip: %v\n", result.Error)
		return errors.NewDatabaseError("failed to update trip", result.Error)
	}

	return nil
}

// Delete removes a trip from the database
func (r *TripRepository) Delete(trip *models.Trip) error {
	log.Printf("[DEBUG] TripRepository.Delete: id=%s\n", trip.TripID)

	result := r.db.Delete(trip)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting trip: %v\n", result.Error)
		return errors.NewDatabaseError("failed to delete trip", result.Error)
	}

	log.Println("[DEBUG] Deleted trip successfully")
	return nil
}
