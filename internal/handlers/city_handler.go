package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/models"
	"github.com/petlove/backend/internal/repositories"
)

const citySearchLimit = 50

// CityHandler serves the location reference data.
type CityHandler struct {
	locationRepository repositories.LocationRepository
	noticeRepository   repositories.NoticeRepository
}

func NewCityHandler(locationRepo repositories.LocationRepository, noticeRepo repositories.NoticeRepository) *CityHandler {
	return &CityHandler{locationRepository: locationRepo, noticeRepository: noticeRepo}
}

func (h *CityHandler) RegisterCityRoutes(g *echo.Group) {
	g.GET("", h.SearchCities)
	g.GET("/locations", h.GetLocations)
}

// SearchCities finds cities whose name contains keyword (3 to 48 chars).
func (h *CityHandler) SearchCities(c echo.Context) error {
	var req models.CitySearchRequest
	if err := c.Bind(&req); err != nil {
		return badQuery(err)
	}
	req.Keyword = strings.TrimSpace(req.Keyword)
	if err := c.Validate(&req); err != nil {
		return badQuery(err)
	}

	cities, err := h.locationRepository.Search(c.Request().Context(), req.Keyword, citySearchLimit)
	if err != nil {
		return serverError("Server error", err)
	}
	if len(cities) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Service not found")
	}
	return c.JSON(http.StatusOK, cities)
}

// GetLocations returns the cities referenced by at least one notice.
func (h *CityHandler) GetLocations(c echo.Context) error {
	ctx := c.Request().Context()
	ids, err := h.noticeRepository.DistinctLocations(ctx)
	if err != nil {
		return serverError("Server error", err)
	}
	if len(ids) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Service not found")
	}

	locations, err := h.locationRepository.FindSummaries(ctx, ids)
	if err != nil {
		return serverError("Server error", err)
	}
	if len(locations) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Service not found")
	}
	return c.JSON(http.StatusOK, locations)
}
