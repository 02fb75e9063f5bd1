package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/auth"
	"github.com/garageflow/garageflow/internal/middleware"
	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	authService *auth.Service
	store       *store.Store
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService *auth.Service, s *store.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: s}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	user, found := h.store.UserByUsername(req.Username)
	if !found {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		return
	}

	if !user.IsActive {
		respondError(c, http.StatusUnauthorized, "ACCOUNT_DISABLED", "Account is deactivated")
		return
	}

	if !h.authService.CheckPassword(req.Password, user.PasswordHash) {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(&user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to generate token")
		return
	}

	h.store.TouchLastLogin(user.ID)

	respondOK(c, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user.Public(),
	})
}

// Profile handles GET /api/auth/profile for the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User context not found")
		return
	}

	user, found := h.store.User(claims.UserID)
	if !found {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	respondOK(c, http.StatusOK, user.Public())
}
