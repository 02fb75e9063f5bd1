package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/garageflow/garageflow/internal/auth"
	"github.com/garageflow/garageflow/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func tokenFor(t *testing.T, service *auth.Service, role models.Role) string {
	t.Helper()
	token, err := service.GenerateToken(&models.User{ID: "1", Username: "test", Role: role})
	assert.NoError(t, err)
	return token
}

func newAuthRouter(service *auth.Service, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append([]gin.HandlerFunc{Authenticate(service)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		claims, _ := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	router.GET("/protected", chain...)
	return router
}

func TestAuthenticateMissingHeader(t *testing.T) {
	service := auth.NewService("secret", time.Hour)
	router := newAuthRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	service := auth.NewService("secret", time.Hour)
	router := newAuthRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	service := auth.NewService("secret", time.Hour)
	router := newAuthRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, service, models.RoleMechanic))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test")
}

func TestRequireRole(t *testing.T) {
	service := auth.NewService("secret", time.Hour)

	tests := []struct {
		name     string
		role     models.Role
		expected int
	}{
		{"matching role passes", models.RoleWarehouse, http.StatusOK},
		{"admin always passes", models.RoleAdmin, http.StatusOK},
		{"other role forbidden", models.RoleMechanic, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(service, RequireRole(models.RoleWarehouse))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, service, tt.role))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
