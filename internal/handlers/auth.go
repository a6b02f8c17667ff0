package handlers

import (
	"net/http"

	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/auth"
	"github.com/petlove/backend/internal/models"
	"github.com/petlove/backend/internal/repositories"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	tokens         *auth.TokenIssuer
	log            *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokens *auth.TokenIssuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		tokens:         tokens,
		log:            log,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, protect echo.MiddlewareFunc) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	g.POST("/signout", h.SignOut, protect)
}

// Signup handles local user registration with email and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return badBody(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	_, err := h.userRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Email is already in use")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return serverError("Server error during registration", err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return serverError("Server error during registration", err)
	}

	user := &models.User{
		Name:     cleanText(req.Name),
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := h.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusConflict, "Email is already in use")
		}
		return serverError("Server error during registration", err)
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		return serverError("Server error during registration", err)
	}
	h.log.Info("user registered", zap.String("user_id", user.ID.Hex()))

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Registration successful",
		"token":   token,
		"user":    summarize(user),
	})
}

// SignIn handles local user authentication with email and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return badBody(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return serverError("Server error during login", err)
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		return serverError("Server error during login", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    summarize(user),
	})
}

// SignOut is stateless: tokens simply expire.
func (h *AuthHandler) SignOut(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logout successful"})
}

func summarize(user *models.User) models.UserSummary {
	var s models.UserSummary
	_ = copier.Copy(&s, user)
	return s
}
