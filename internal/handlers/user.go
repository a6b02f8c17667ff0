package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/auth"
	"github.com/petlove/backend/internal/middleware"
	"github.com/petlove/backend/internal/models"
	"github.com/petlove/backend/internal/repositories"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests related to the current user and their pets
type UserHandler struct {
	userRepository   repositories.UserRepository
	noticeRepository repositories.NoticeRepository
	petRepository    repositories.PetRepository
	tokens           *auth.TokenIssuer
	log              *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	noticeRepo repositories.NoticeRepository,
	petRepo repositories.PetRepository,
	tokens *auth.TokenIssuer,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		noticeRepository: noticeRepo,
		petRepository:    petRepo,
		tokens:           tokens,
		log:              log,
	}
}

// RegisterProfileRoutes registers the current-user routes. The group is
// expected to be protected already.
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("", h.GetCurrent)
	g.GET("/full", h.GetCurrentFull)
	g.PATCH("/edit", h.EditCurrent)
	g.POST("/pets/add", h.AddPet)
	g.DELETE("/pets/remove/:id", h.RemovePet)
}

// GetCurrent returns the user with favorites expanded and a fresh token.
func (h *UserHandler) GetCurrent(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	favorites, err := h.noticeRepository.FindByIDs(ctx, user.NoticesFavorites)
	if err != nil {
		return serverError("Server error", err)
	}
	token, err := h.tokens.Generate(user)
	if err != nil {
		return serverError("Server error", err)
	}

	return c.JSON(http.StatusOK, models.UserProfile{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Token:            token,
		NoticesFavorites: favorites,
	})
}

// GetCurrentFull returns the user with every relation expanded.
func (h *UserHandler) GetCurrentFull(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	return h.respondFull(c, user)
}

// EditCurrent updates the provided profile fields.
func (h *UserHandler) EditCurrent(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var req models.EditUserRequest
	if err := c.Bind(&req); err != nil {
		return badBody(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.Email != nil {
		taken, err := h.userRepository.EmailExistsForOther(ctx, *req.Email, userID)
		if err != nil {
			return serverError("Server error", err)
		}
		if taken {
			return echo.NewHTTPError(http.StatusConflict, "User with such an email is already exist")
		}
	}
	if req.Name != nil {
		name := cleanText(*req.Name)
		if len(name) < 2 {
			return echo.NewHTTPError(http.StatusBadRequest, "Bad request (invalid request body)")
		}
		req.Name = &name
	}

	updated, err := h.userRepository.UpdateProfile(ctx, userID, repositories.UserUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return echo.NewHTTPError(http.StatusConflict, "User with such an email is already exist")
		case errors.Is(err, repositories.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return serverError("Server error", err)
	}
	return h.respondFull(c, updated)
}

// AddPet creates a pet owned by the current user and links it to the profile.
func (h *UserHandler) AddPet(c echo.Context) error {
	var req models.AddPetRequest
	if err := c.Bind(&req); err != nil {
		return badBody(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return err
	}

	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	pet := &models.Pet{
		Name:     cleanText(req.Name),
		Title:    cleanText(req.Title),
		ImgURL:   req.ImgURL,
		Species:  models.PetSpecies(req.Species),
		Birthday: birthday,
		Sex:      models.PetSex(req.Sex),
		User:     user.ID,
	}
	if pet.Name == "" || pet.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Bad request (invalid request body)")
	}

	ctx := c.Request().Context()
	if err := h.petRepository.Create(ctx, pet); err != nil {
		return serverError("Server error", err)
	}
	updated, err := h.userRepository.AddPet(ctx, user.ID, pet.ID)
	if err != nil {
		return serverError("Server error", err)
	}
	return h.respondFull(c, updated)
}

// RemovePet deletes one of the current user's pets. Pets owned by someone
// else are a conflict, not a not-found.
func (h *UserHandler) RemovePet(c echo.Context) error {
	petID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	pet, err := h.petRepository.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "This pet is not found")
		}
		return serverError("Server error", err)
	}

	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	if !user.OwnsPet(pet) {
		return echo.NewHTTPError(http.StatusConflict, "You aren't owner of this pet")
	}

	if err := h.petRepository.Delete(ctx, petID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return serverError("Server error", err)
	}
	updated, err := h.userRepository.RemovePet(ctx, user.ID, petID)
	if err != nil {
		return serverError("Server error", err)
	}
	return h.respondFull(c, updated)
}

func (h *UserHandler) currentUser(c echo.Context) (*models.User, error) {
	user, err := h.userRepository.GetByID(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, serverError("Server error", err)
	}
	return user, nil
}

func (h *UserHandler) respondFull(c echo.Context, user *models.User) error {
	profile, err := h.fullProfile(c.Request().Context(), user)
	if err != nil {
		return serverError("Server error", err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) fullProfile(ctx context.Context, user *models.User) (*models.UserFullProfile, error) {
	viewed, err := h.noticeRepository.FindByIDs(ctx, user.NoticesViewed)
	if err != nil {
		return nil, err
	}
	favorites, err := h.noticeRepository.FindByIDs(ctx, user.NoticesFavorites)
	if err != nil {
		return nil, err
	}
	pets, err := h.petRepository.FindByIDs(ctx, user.Pets)
	if err != nil {
		return nil, err
	}
	token, err := h.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &models.UserFullProfile{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Avatar:           user.Avatar,
		Phone:            user.Phone,
		Token:            token,
		NoticesViewed:    viewed,
		NoticesFavorites: favorites,
		Pets:             pets,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}, nil
}
