//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/jwt"
	"vehicle-rental/tests/common/httptest"
	"vehicle-rental/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	auth := middleware.NewAuthMiddleware(svc, testutil.DiscardLogger())
	whoami := func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), whoami)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	router := newAuthRouter(svc)

	token := func(t *testing.T, role user.Role) string {
		t.Helper()
		tok, err := svc.GenerateToken(uuid.New(), role)
		require.NoError(t, err)
		return tok
	}

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("token signed with another key is 401", func(t *testing.T) {
		other, err := jwt.NewService("other", time.Hour).GenerateToken(uuid.New(), user.RoleMember)
		require.NoError(t, err)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, other)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token is 401", func(t *testing.T) {
		expired, err := jwt.NewService("secret", -time.Minute).GenerateToken(uuid.New(), user.RoleMember)
		require.NoError(t, err)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token(t, user.Role("auditor")))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unknown role")
	})

	t.Run("member reaches member routes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token(t, user.RoleMember))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"member"`)
	})

	t.Run("member on admin route is 403", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token(t, user.RoleMember))
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("admin reaches admin routes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token(t, user.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
