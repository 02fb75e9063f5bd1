package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageflow/garageflow/internal/models"
)

func TestLoginWithSeededAdmin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]any)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "admin", user["role"])
	assert.Empty(t, user["passwordHash"], "password hash must never leave the server")
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRecordsLastLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "sara",
		Password: "front1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	user, found := env.store.UserByUsername("sara")
	require.True(t, found)
	assert.NotNil(t, user.LastLogin)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)

	// Token for the seeded admin (id "1").
	admin, found := env.store.UserByUsername("admin")
	require.True(t, found)
	token, err := env.auth.GenerateToken(&admin)
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, "admin", data["username"])
}
