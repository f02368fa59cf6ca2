package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/pkg/utils"
)

func newAuthTestRouter(seenUser *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/api")
	protected.Use(JWTAuthMiddleware())
	protected.GET("/myTrips", func(c *gin.Context) {
		*seenUser = c.GetString("user_id")
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {

	t.Run("MissingHeader", func(t *testing.T) {
		var seenUser string
		r := newAuthTestRouter(&seenUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/myTrips", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, seenUser)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		var seenUser string
		r := newAuthTestRouter(&seenUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/myTrips", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, seenUser)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		var seenUser string
		r := newAuthTestRouter(&seenUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/myTrips", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, seenUser)
	})

	t.Run("ValidTokenResolvesIdentity", func(t *testing.T) {
		var seenUser string
		r := newAuthTestRouter(&seenUser)

		userId := uuid.New()
		token, err := utils.CreateToken(userId)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/myTrips", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userId.String(), seenUser)
	})
}
