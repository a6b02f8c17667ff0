package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/petlove/backend/internal/auth"
	"github.com/petlove/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), Email: "ann@example.com"}
	token, err := issuer.Generate(user)
	require.NoError(t, err)

	var seen primitive.ObjectID
	handler := JWTAuthMiddleware(issuer)(func(c echo.Context) error {
		seen = UserIDFromContext(c)
		return c.NoContent(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			if tt.code == http.StatusUnauthorized {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.code, he.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, user.ID, seen)
		})
	}
}

func TestUserIDFromContextWithoutClaims(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.True(t, UserIDFromContext(c).IsZero())
}
