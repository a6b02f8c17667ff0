package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/auth"
	"github.com/petlove/backend/internal/handlers"
	"github.com/petlove/backend/internal/middleware"
	"github.com/petlove/backend/internal/repositories"
	"github.com/petlove/backend/internal/validators"
	"github.com/petlove/backend/pkg/config"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger
	Tokens *auth.TokenIssuer

	Users     repositories.UserRepository
	Notices   repositories.NoticeRepository
	Pets      repositories.PetRepository
	Locations repositories.LocationRepository
	Friends   repositories.FriendRepository
	News      repositories.NewsRepository
}

// New builds a fully wired echo instance.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = config.NewHTTPErrorHandler(deps.Config, deps.Logger)

	config.SetupMiddleware(e, deps.Config, deps.Logger)
	SetupRoutes(e, deps)
	return e
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	log := deps.Logger

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Welcome to PetLove API",
			"status":  "Server is running",
		})
	})
	e.GET("/api/health", handlers.HealthCheck)

	protect := middleware.JWTAuthMiddleware(deps.Tokens)

	// Notices and favorites
	noticeHandler := handlers.NewNoticeHandler(deps.Notices, deps.Users, deps.Locations, log)
	noticeHandler.RegisterNoticeRoutes(e.Group("/notices"), protect)

	// Accounts
	users := e.Group("/users")
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens, log)
	authHandler.RegisterAuthRoutes(users, protect)

	userHandler := handlers.NewUserHandler(deps.Users, deps.Notices, deps.Pets, deps.Tokens, log)
	userHandler.RegisterProfileRoutes(users.Group("/current", protect))

	// Reference data
	cityHandler := handlers.NewCityHandler(deps.Locations, deps.Notices)
	cityHandler.RegisterCityRoutes(e.Group("/cities"))

	friendHandler := handlers.NewFriendHandler(deps.Friends)
	friendHandler.RegisterFriendRoutes(e.Group("/friends"))

	newsHandler := handlers.NewNewsHandler(deps.News)
	newsHandler.RegisterNewsRoutes(e.Group("/news"))

	log.Debug("routes configured", zap.Int("count", len(e.Routes())))
}
