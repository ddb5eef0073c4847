package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "payanam.app/errors"
	"payanam.app/models"
)

func (s *Server) listCities(c *gin.Context) {
	var q models.CityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, apperrors.NewValidationError("invalid query parameters"))
		return
	}

	cities, err := s.catalogService.ListCities(q)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (s *Server) searchCities(c *gin.Context) {
	cities, err := s.catalogService.SearchCities(c.Query("q"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (s *Server) getCity(c *gin.Context) {
	city, err := s.catalogService.GetCity(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, city)
}

func (s *Server) listActivities(c *gin.Context) {
	var q models.ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.handleError(c, apperrors.NewValidationError("invalid query parameters"))
		return
	}

	activities, err := s.catalogService.ListActivities(q)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (s *Server) searchActivities(c *gin.Context) {
	activities, err := s.catalogService.SearchActivities(c.Query("q"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (s *Server) getActivity(c *gin.Context) {
	activity, err := s.catalogService.GetActivity(c.Param("id"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}
