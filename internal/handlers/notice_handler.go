package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/middleware"
	"github.com/petlove/backend/internal/models"
	"github.com/petlove/backend/internal/repositories"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests related to notices and favorites
type NoticeHandler struct {
	noticeRepository   repositories.NoticeRepository
	userRepository     repositories.UserRepository
	locationRepository repositories.LocationRepository
	log                *zap.Logger
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(
	noticeRepo repositories.NoticeRepository,
	userRepo repositories.UserRepository,
	locationRepo repositories.LocationRepository,
	log *zap.Logger,
) *NoticeHandler {
	return &NoticeHandler{
		noticeRepository:   noticeRepo,
		userRepository:     userRepo,
		locationRepository: locationRepo,
		log:                log,
	}
}

// RegisterNoticeRoutes registers notice routes. protect guards the routes
// that act on behalf of a user.
func (h *NoticeHandler) RegisterNoticeRoutes(g *echo.Group, protect echo.MiddlewareFunc) {
	g.GET("", h.ListNotices)
	g.POST("", h.CreateNotice, protect)
	g.GET("/categories", h.GetCategories)
	g.GET("/sex", h.GetSex)
	g.GET("/species", h.GetSpecies)
	g.POST("/favorites/add/:id", h.AddToFavorites, protect)
	g.DELETE("/favorites/remove/:id", h.RemoveFromFavorites, protect)
	g.GET("/:id", h.GetNotice)
}

// ListNotices returns one page of notices matching the query filters.
func (h *NoticeHandler) ListNotices(c echo.Context) error {
	req := models.ListNoticesRequest{ByDate: "true", Page: 1, Limit: 6}
	if err := c.Bind(&req); err != nil {
		return badQuery(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	q := repositories.NoticeQuery{
		Keyword:      strings.TrimSpace(req.Keyword),
		Category:     models.NoticeCategory(req.Category),
		Species:      models.Species(req.Species),
		Sex:          models.NoticeSex(req.Sex),
		ByDate:       req.ByDate == "true",
		ByPopularity: req.ByPopularity == "true",
		Page:         req.Page,
		Limit:        req.Limit,
	}
	switch req.ByPrice {
	case "true":
		q.ByPrice = repositories.PriceDescending
	case "false":
		q.ByPrice = repositories.PriceAscending
	}
	if req.LocationID != "" {
		q.Location, _ = primitive.ObjectIDFromHex(req.LocationID)
	}

	ctx := c.Request().Context()
	notices, total, err := h.noticeRepository.List(ctx, q)
	if err != nil {
		return serverError("Server error while fetching notices", err)
	}

	ids := make([]primitive.ObjectID, 0, len(notices))
	for _, n := range notices {
		ids = append(ids, n.Location)
	}
	refs, err := h.locationRepository.FindRefs(ctx, ids)
	if err != nil {
		return serverError("Server error while fetching notices", err)
	}

	results := make([]models.NoticeSummary, 0, len(notices))
	for _, n := range notices {
		results = append(results, models.NoticeSummary{Notice: n, Location: locationRef(refs, n.Location)})
	}

	return c.JSON(http.StatusOK, models.NoticePage{
		Page:       req.Page,
		PerPage:    req.Limit,
		TotalPages: totalPages(total, req.Limit),
		Results:    results,
	})
}

// GetNotice returns a single notice with its location and author expanded.
func (h *NoticeHandler) GetNotice(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	notice, err := h.noticeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "This notice is not found in notices")
		}
		return serverError("Server error while fetching notice", err)
	}

	refs, err := h.locationRepository.FindRefs(ctx, []primitive.ObjectID{notice.Location})
	if err != nil {
		return serverError("Server error while fetching notice", err)
	}
	author := models.UserContact{ID: notice.User}
	contact, err := h.userRepository.GetContact(ctx, notice.User)
	switch {
	case err == nil:
		author = *contact
	case !errors.Is(err, repositories.ErrNotFound):
		return serverError("Server error while fetching notice", err)
	}

	return c.JSON(http.StatusOK, models.NoticeDetail{
		Notice:   *notice,
		Location: locationRef(refs, notice.Location),
		User:     author,
	})
}

// CreateNotice publishes a notice authored by the current user.
func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var req models.CreateNoticeRequest
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

	ctx := c.Request().Context()
	locationID, _ := primitive.ObjectIDFromHex(req.Location)
	ok, err := h.locationRepository.Exists(ctx, locationID)
	if err != nil {
		return serverError("Server error while creating notice", err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "This location is not found")
	}

	notice := &models.Notice{
		Species:  models.Species(req.Species),
		Category: models.NoticeCategory(req.Category),
		Price:    req.Price,
		Title:    cleanText(req.Title),
		Name:     cleanText(req.Name),
		Birthday: birthday,
		Comment:  cleanText(req.Comment),
		Sex:      models.NoticeSex(req.Sex),
		Location: locationID,
		User:     userID,
	}
	if notice.Title == "" || notice.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Bad request (invalid request body)")
	}
	if req.ImgURL != "" {
		notice.ImgURL = &req.ImgURL
	}

	if err := h.noticeRepository.Create(ctx, notice); err != nil {
		return serverError("Server error while creating notice", err)
	}
	return c.JSON(http.StatusCreated, notice)
}

// GetCategories lists the notice categories.
func (h *NoticeHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, models.NoticeCategories())
}

// GetSex lists the sex options of a notice.
func (h *NoticeHandler) GetSex(c echo.Context) error {
	return c.JSON(http.StatusOK, models.NoticeSexes())
}

// GetSpecies lists the notice species.
func (h *NoticeHandler) GetSpecies(c echo.Context) error {
	return c.JSON(http.StatusOK, models.AllSpecies())
}

// AddToFavorites adds a notice to the current user's favorites and bumps its
// popularity.
func (h *NoticeHandler) AddToFavorites(c echo.Context) error {
	return h.toggleFavorite(c, true)
}

// RemoveFromFavorites is the inverse of AddToFavorites.
func (h *NoticeHandler) RemoveFromFavorites(c echo.Context) error {
	return h.toggleFavorite(c, false)
}

// toggleFavorite runs every check before the first write. The favorites set
// and the popularity counter are then updated by two separate writes with no
// rollback: if the second one fails the two are out of step until fixed by
// hand, which is logged below.
func (h *NoticeHandler) toggleFavorite(c echo.Context, add bool) error {
	failure := "Server error while removing from favorites"
	if add {
		failure = "Server error while adding to favorites"
	}

	userID := middleware.UserIDFromContext(c)
	noticeID, err := parseObjectID(c.Param("id"))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.noticeRepository.GetByID(ctx, noticeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "This notice is not found in notices")
		}
		return serverError(failure, err)
	}

	user, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return serverError(failure, err)
	}

	favorited := user.HasFavorite(noticeID)
	if add && favorited {
		return echo.NewHTTPError(http.StatusConflict, "This notice has already added to user's favorite notices")
	}
	if !add && !favorited {
		return echo.NewHTTPError(http.StatusConflict, "This notice is not found in user's favorite notices")
	}

	delta := 1
	var updated *models.User
	if add {
		updated, err = h.userRepository.AddFavorite(ctx, userID, noticeID)
	} else {
		delta = -1
		updated, err = h.userRepository.RemoveFavorite(ctx, userID, noticeID)
	}
	if err != nil {
		return serverError(failure, err)
	}

	if err := h.noticeRepository.IncrementPopularity(ctx, noticeID, delta); err != nil {
		h.log.Error("favorites updated but popularity was not",
			zap.String("user_id", userID.Hex()),
			zap.String("notice_id", noticeID.Hex()),
			zap.Int("delta", delta),
			zap.Error(err),
		)
		return serverError(failure, err)
	}

	favorites := updated.NoticesFavorites
	if favorites == nil {
		favorites = []primitive.ObjectID{}
	}
	return c.JSON(http.StatusOK, favorites)
}

func locationRef(refs map[primitive.ObjectID]models.LocationRef, id primitive.ObjectID) models.LocationRef {
	if ref, ok := refs[id]; ok {
		return ref
	}
	return models.LocationRef{ID: id}
}
