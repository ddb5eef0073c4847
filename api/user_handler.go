package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "payanam.app/errors"
	"payanam.app/models"
)

func (s *Server) register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	user, err := s.userService.Register(&req)
	if err != nil {
		slog.Error("Registration error", "error", err, "email", req.Email)
		s.handleError(c, err)
		return
	}

	slog.Debug("User registered", "userID", user.UserID)
	c.JSON(http.StatusCreated, user)
}

func (s *Server) getProfile(c *gin.Context) {
	user, err := s.userService.GetProfile(callerID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) updateProfile(c *gin.Context) {
	var patch models.UpdateUserRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	user, err := s.userService.UpdateProfile(callerID(c), &patch)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteAccount(c *gin.Context) {
	if err := s.userService.DeleteAccount(callerID(c)); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

func (s *Server) getAnalytics(c *gin.Context) {
	summary, err := s.analyticsService.Summarize(callerID(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
