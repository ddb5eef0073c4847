package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "payanam.app/errors"
	"payanam.app/itinerary"
	"payanam.app/models"
)

func (s *Server) createTrip(c *gin.Context) {
	var req models.CreateTripRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	trip, err := s.tripService.CreateTrip(callerID(c), &req)
	if err != nil {
		slog.Error("Trip creation error", "error", err, "caller", callerID(c))
		s.handleError(c, err)
		return
	}

	slog.Debug("Trip created", "tripID", trip.TripID, "owner", trip.UserID)
	c.JSON(http.StatusCreated, trip)
}

func (s *Server) listTrips(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.handleError(c, apperrors.NewValidationError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	trips, err := s.tripService.ListTrips(callerID(c), limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

func (s *Server) getTrip(c *gin.Context) {
	trip, err := s.tripService.GetTrip(c.Param("id"), callerID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (s *Server) updateTrip(c *gin.Context) {
	var patch models.UpdateTripRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	trip, err := s.tripService.UpdateMetadata(c.Param("id"), callerID(c), &patch)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (s *Server) deleteTrip(c *gin.Context) {
	if err := s.tripService.DeleteTrip(c.Param("id"), callerID(c)); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

func (s *Server) getItinerary(c *gin.Context) {
	doc, err := s.tripService.GetItinerary(c.Param("id"), callerID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (s *Server) replaceItinerary(c *gin.Context) {
	var doc itinerary.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		slog.Error("Itinerary binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid itinerary format"))
		return
	}

	if err := s.tripService.ReplaceItinerary(c.Param("id"), callerID(c), doc); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itinerary saved successfully"})
}

func (s *Server) updateBudget(c *gin.Context) {
	var req models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("total_budget is required"))
		return
	}

	trip, err := s.tripService.UpdateBudget(c.Param("id"), callerID(c), *req.TotalBudget)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (s *Server) toggleVisibility(c *gin.Context) {
	trip, err := s.tripService.ToggleVisibility(c.Param("id"), callerID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_public":  trip.IsPublic,
		"share_code": trip.ShareCode,
	})
}

func (s *Server) getSharedTrip(c *gin.Context) {
	trip, err := s.tripService.GetSharedTrip(c.Param("code"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (s *Server) copySharedTrip(c *gin.Context) {
	trip, err := s.tripService.CopySharedTrip(c.Param("code"), callerID(c))
	if err != nil {
		slog.Error("Trip copy error", "error", err, "code", c.Param("code"))
		s.handleError(c, err)
		return
	}

	slog.Debug("Trip copied", "source_code", c.Param("code"), "tripID", trip.TripID)
	c.JSON(http.StatusCreated, trip)
}
