package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/models"
	"github.com/petlove/backend/internal/repositories"
)

type NewsHandler struct {
	newsRepository repositories.NewsRepository
}

func NewNewsHandler(newsRepo repositories.NewsRepository) *NewsHandler {
	return &NewsHandler{newsRepository: newsRepo}
}

func (h *NewsHandler) RegisterNewsRoutes(g *echo.Group) {
	g.GET("", h.GetNews)
}

// GetNews returns a page of news, newest first, optionally filtered by keyword.
func (h *NewsHandler) GetNews(c echo.Context) error {
	req := models.ListNewsRequest{Page: 1, Limit: 6}
	if err := c.Bind(&req); err != nil {
		return badQuery(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skip := int64(req.Page-1) * int64(req.Limit)
	news, total, err := h.newsRepository.List(c.Request().Context(), strings.TrimSpace(req.Keyword), skip, int64(req.Limit))
	if err != nil {
		return serverError("Server error while fetching news", err)
	}

	return c.JSON(http.StatusOK, models.NewsPage{
		Page:       req.Page,
		PerPage:    req.Limit,
		TotalPages: totalPages(total, req.Limit),
		Results:    news,
	})
}
