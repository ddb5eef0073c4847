package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"payanam.app/config"
	apperrors "payanam.app/errors"
	"payanam.app/models"
	"payanam.app/service"
)

// callerIDKey is the gin context key holding the authenticated caller's user
// id, set by the identity middleware. Empty means anonymous.
const callerIDKey = "callerID"

// Server represents the HTTP server and API handler
type Server struct {
	router           *gin.Engine
	db               *gorm.DB
	config           *config.Config
	tripService      service.TripServiceInterface
	userService      service.UserServiceInterface
	catalogService   service.CatalogServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(
	db *gorm.DB,
	config *config.Config,
	tripService service.TripServiceInterface,
	userService service.UserServiceInterface,
	catalogService service.CatalogServiceInterface,
	analyticsService service.AnalyticsServiceInterface,
) *Server {
	router := gin.Default()

	server := &Server{
		router:           router,
		db:               db,
		config:           config,
		tripService:      tripService,
		userService:      userService,
		catalogService:   catalogService,
		analyticsService: analyticsService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.Use(identityMiddleware())

	api := s.router.Group("/api")
	{
		api.POST("/register", s.register)
		api.GET("/profile", s.getProfile)
		api.PUT("/profile", s.updateProfile)
		api.DELETE("/profile", s.deleteAccount)

		api.GET("/trips", s.listTrips)
		api.POST("/trips", s.createTrip)
		api.GET("/trip/:id", s.getTrip)
		api.PUT("/trip/:id", s.updateTrip)
		api.DELETE("/trip/:id", s.deleteTrip)
		api.GET("/trip/:id/itinerary", s.getItinerary)
		api.POST("/trip/:id/itinerary", s.replaceItinerary)
		api.POST("/trip/:id/budget", s.updateBudget)
		api.POST("/trip/:id/toggle-public", s.toggleVisibility)

		api.GET("/shared/:code", s.getSharedTrip)
		api.POST("/shared/:code/copy", s.copySharedTrip)

		api.GET("/cities", s.listCities)
		api.GET("/cities/search", s.searchCities)
		api.GET("/city/:id", s.getCity)
		api.GET("/activities", s.listActivities)
		api.GET("/activities/search", s.searchActivities)
		api.GET("/activity/:id", s.getActivity)

		api.GET("/analytics", s.getAnalytics)
		api.GET("/debug", s.debugEndpoint)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// identityMiddleware extracts the opaque caller identity from the X-User-ID
// header. An absent header means an anonymous caller; authorization decisions
// are made per operation in the service layer.
func identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(callerIDKey, c.GetHeader("X-User-ID"))
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(callerIDKey)
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) debugEndpoint(c *gin.Context) {
	var userCount, tripCount, cityCount int64
	dbErr := s.db.Model(&models.User{}).Count(&userCount).Error
	s.db.Model(&models.Trip{}).Count(&tripCount)
	s.db.Model(&models.City{}).Count(&cityCount)

	response := gin.H{
		"database": map[string]interface{}{
			"connected": dbErr == nil,
			"error":     dbErr,
			"userCount": userCount,
			"tripCount": tripCount,
			"cityCount": cityCount,
		},
		"config": map[string]string{
			"appBaseURL": s.config.AppBaseURL,
			"cacheType":  string(s.config.Cache.Type),
		},
	}

	c.JSON(http.StatusOK, response)
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperrors.AuthorizationError:
			statusCode = http.StatusUnauthorized
			message = appErr.Message
		case apperrors.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case apperrors.AlreadyExistsError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case apperrors.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		case apperrors.CacheError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
