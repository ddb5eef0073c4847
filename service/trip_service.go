package service

import (
	"fmt"
	"log"

	"payanam.app/errors"
	"payanam.app/itinerary"
	"payanam.app/models"
)

// TripService handles trip lifecycle business logic
type TripService struct {
	tripRepo TripRepositoryInterface
	userRepo UserRepositoryInterface
}

// NewTripService creates a new trip service
func NewTripService(tripRepo TripRepositoryInterface, userRepo UserRepositoryInterface) *TripService {
	return &TripService{
		tripRepo: tripRepo,
		userRepo: userRepo,
	}
}

// CreateTrip creates a new trip owned by ownerID with an empty itinerary
func (s *TripService) CreateTrip(ownerID string, req *models.CreateTripRequest) (*models.Trip, error) {
	log.Printf("[DEBUG] TripService.CreateTrip called for owner: %s\n", ownerID)

	if ownerID == "" {
		return nil, errors.NewAuthorizationError("caller identity is required")
	}
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ownerID); err != nil {
		return nil, err
	}

	category := req.TripCategory
	if category == "" {
		category = "leisure"
	}

	trip := &models.Trip{
		UserID:          ownerID,
		TripName:        req.TripName,
		TripDescription: req.TripDescription,
		TripCategory:    category,
		CoverImage:      req.CoverImage,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalBudget:     req.TotalBudget,
		ItineraryJSON:   itinerary.Encode(itinerary.Empty()),
	}

	if err := s.tripRepo.Create(trip); err != nil {
		return nil, err
	}

	return trip, nil
}

func (s *TripService) validateCreateRequest(req *models.CreateTripRequest) error {
	if req == nil {
		return errors.NewValidationError("request cannot be empty")
	}
	if req.TripName == "" {
		return errors.NewValidationError("trip name is required")
	}
	if req.StartDate == "" {
		return errors.NewValidationError("start date is required")
	}
	if req.EndDate == "" {
		return errors.NewValidationError("end date is required")
	}
	if req.TotalBudget < 0 {
		return errors.NewValidationError("total budget cannot be negative")
	}
	return nil
}

// GetTrip retrieves a trip readable by callerID: its owner, or anyone
// (including anonymous callers) when the trip is public
func (s *TripService) GetTrip(tripID, callerID string) (*models.Trip, error) {
	log.Printf("[DEBUG] TripService.GetTrip: trip=%s, caller=%s\n", tripID, callerID)

	trip, err := s.tripRepo.FindByID(tripID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeRead(trip, callerID); err != nil {
		return nil, err
	}
	return trip, nil
}

// ListTrips retrieves the caller's own trips, newest first
func (s *TripService) ListTrips(ownerID string, limit int) ([]models.Trip, error) {
	if ownerID == "" {
		return nil, errors.NewAuthorizationError("caller identity is required")
	}
	return s.tripRepo.FindByUserID(ownerID, limit)
}

// UpdateMetadata applies a partial metadata patch; fields absent from the
// patch are retained
func (s *TripService) UpdateMetadata(tripID, callerID string, patch *models.UpdateTripRequest) (*models.Trip, error) {
	log.Printf("[DEBUG] TripService.UpdateMetadata: trip=%s, caller=%s\n", tripID, callerID)

	if patch == nil {
		return nil, errors.NewValidationError("patch cannot be empty")
	}

	trip, err := s.ownedTrip(tripID, callerID)
	if err != nil {
		return nil, err
	}

	if patch.TripName != nil {
		if *patch.TripName == "" {
			return nil, errors.NewValidationError("trip name cannot be empty")
		}
		trip.TripName = *patch.TripName
	}
	if patch.TripDescription != nil {
		trip.TripDescription = *patch.TripDescription
	}
	if patch.TripCategory != nil {
		trip.TripCategory = *patch.TripCategory
	}
	if patch.CoverImage != nil {
		trip.CoverImage = *patch.CoverImage
	}
	if patch.StartDate != nil {
		trip.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		trip.EndDate = *patch.EndDate
	}
	if patch.TotalBudget != nil {
		if *patch.TotalBudget < 0 {
			return nil, errors.NewValidationError("total budget cannot be negative")
		}
		trip.TotalBudget = *patch.TotalBudget
	}
	if patch.IsPublic != nil {
		trip.IsPublic = *patch.IsPublic
	}

	if err := s.tripRepo.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// UpdateBudget updates only the trip's total budget
func (s *TripService) UpdateBudget(tripID, callerID string, totalBudget float64) (*models.Trip, error) {
	log.Printf("[DEBUG] TripService.UpdateBudget: trip=%s, budget=%f\n", tripID, totalBudget)

	if totalBudget < 0 {
		return nil, errors.NewValidationError("total budget cannot be negative")
	}

	trip, err := s.ownedTrip(tripID, callerID)
	if err != nil {
		return nil, err
	}

	trip.TotalBudget = totalBudget
	if err := s.tripRepo.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetItinerary decodes the trip's itinerary document. Decoding is lenient:
// malformed storage yields the empty document, never an error.
func (s *TripService) GetItinerary(tripID, callerID string) (itinerary.Document, error) {
	trip, err := s.tripRepo.FindByID(tripID)
	if err != nil {
		return itinerary.Empty(), err
	}

	if err := s.authorizeRead(trip, callerID); err != nil {
		return itinerary.Empty(), err
	}

	return itinerary.Decode(trip.ItineraryJSON), nil
}

// ReplaceItinerary stores the encoded document wholesale; there is no merge
// with prior state and concurrent writers follow last write wins
func (s *TripService) ReplaceItinerary(tripID, callerID string, doc itinerary.Document) error {
	log.Printf("[DEBUG] TripService.ReplaceItinerary: trip=%s, stops=%d\n", tripID, doc.StopCount())

	trip, err := s.ownedTrip(tripID, callerID)
	if err != nil {
		return err
	}

	trip.ItineraryJSON = itinerary.Encode(doc)
	return s.tripRepo.Update(trip)
}

// ToggleVisibility flips the trip's public flag. The share code was allocated
// at creation and is unaffected.
func (s *TripService) ToggleVisibility(tripID, callerID string) (*models.Trip, error) {
	log.Printf("[DEBUG] TripService.ToggleVisibility: trip=%s\n", tripID)

	trip, err := s.ownedTrip(tripID, callerID)
	if err != nil {
		return nil, err
	}

	trip.IsPublic = !trip.IsPublic
	if err := s.tripRepo.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip removes the caller's trip
func (s *TripService) DeleteTrip(tripID, callerID string) error {
	log.Printf("[DEBUG] TripService.DeleteTrip: trip=%s, caller=%s\n", tripID, callerID)

	trip, err := s.ownedTrip(tripID, callerID)
	if err != nil {
		return err
	}

	return s.tripRepo.Delete(trip)
}

// GetSharedTrip retrieves a public trip by share code for anonymous viewing
func (s *TripService) GetSharedTrip(shareCode string) (*models.Trip, error) {
	return s.tripRepo.FindPublicByShareCode(shareCode)
}

// CopySharedTrip clones a public trip into a new trip owned by newOwnerID.
// The itinerary document is copied byte for byte; the copy gets a fresh id,
// share code and timestamps and starts private. The source is untouched.
func (s *TripService) CopySharedTrip(shareCode, newOwnerID string) (*models.Trip, error) {
	log.Printf("[DEBUG] TripService.CopySharedTrip: code=%s, newOwner=%s\n", shareCode, newOwnerID)

	if newOwnerID == "" {
		return nil, errors.NewAuthorizationError("caller identity is required")
	}

	source, err := s.tripRepo.FindPublicByShareCode(shareCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(newOwnerID); err != nil {
		return nil, err
	}

	copied := &models.Trip{
		UserID:          newOwnerID,
		TripName:        fmt.Sprintf("Copy of %s", source.TripName),
		TripDescription: source.TripDescription,
		TripCategory:    source.TripCategory,
		CoverImage:      source.CoverImage,
		StartDate:       source.StartDate,
		EndDate:         source.EndDate,
		TotalBudget:     source.TotalBudget,
		ItineraryJSON:   source.ItineraryJSON,
	}

	if err := s.tripRepo.Create(copied); err != nil {
		return nil, err
	}
	return copied, nil
}

// ownedTrip loads a trip and checks that callerID is its owner. Write access
// is owner-only regardless of visibility.
func (s *TripService) ownedTrip(tripID, callerID string) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(tripID)
	if err != nil {
		return nil, err
	}

	if callerID == "" || trip.UserID != callerID {
		return nil, errors.NewAuthorizationError("caller does not own this trip")
	}
	return trip, nil
}

func (s *TripService) authorizeRead(trip *models.Trip, callerID string) error {
	if trip.IsPublic {
		return nil
	}
	if callerID != "" && trip.UserID == callerID {
		return nil
	}
	return errors.NewAuthorizationError("trip is private")
}
