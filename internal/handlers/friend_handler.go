package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/repositories"
)

type FriendHandler struct {
	friendRepository repositories.FriendRepository
}

func NewFriendHandler(friendRepo repositories.FriendRepository) *FriendHandler {
	return &FriendHandler{friendRepository: friendRepo}
}

func (h *FriendHandler) RegisterFriendRoutes(g *echo.Group) {
	g.GET("", h.GetFriends)
}

// GetFriends lists every partner organisation.
func (h *FriendHandler) GetFriends(c echo.Context) error {
	friends, err := h.friendRepository.List(c.Request().Context())
	if err != nil {
		return serverError("Server error", err)
	}
	if len(friends) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Service not found")
	}
	return c.JSON(http.StatusOK, friends)
}
