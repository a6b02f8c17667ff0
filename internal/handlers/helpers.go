package handlers

import (
	"html"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var textPolicy = bluemonday.StrictPolicy()

// parseObjectID checks the 24-hex shape before any store call.
func parseObjectID(raw string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, "This id is not valid")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, "This id is not valid")
	}
	return id, nil
}

// totalPages is ceil(total / limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// cleanText strips any markup from user supplied text.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// parseBirthday accepts any common date layout ("2021-03-04", "04.03.2021",
// RFC 3339, ...). Birthdays in the future are rejected.
func parseBirthday(raw string) (time.Time, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "Bad request (invalid birthday)")
	}
	if t.After(time.Now()) {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "Bad request (birthday is in the future)")
	}
	return t.UTC(), nil
}

func serverError(message string, err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, message).SetInternal(err)
}

func badQuery(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, "Bad request (invalid request query)").SetInternal(err)
}

func badBody(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, "Bad request (invalid request body)").SetInternal(err)
}
