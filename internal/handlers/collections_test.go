package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageflow/garageflow/internal/models"
)

func TestGetCollection(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleAdmin)

	env.store.AddCustomer(models.Customer{Name: "Ali", Phone: "0912", Address: "Tehran"})

	w := env.do(t, http.MethodGet, "/api/collections/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customers"`)
	assert.Contains(t, w.Body.String(), "Ali")
}

func TestGetCollectionUnknownName(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleAdmin)

	w := env.do(t, http.MethodGet, "/api/collections/nonsense", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
}

func TestGetCollectionRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/collections/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostCollectionReplacesDocument(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleAdmin)

	doc := map[string]any{
		"customers": []map[string]any{
			{"id": "42", "name": "Maryam", "phone": "0935", "address": "Karaj"},
		},
	}
	w := env.do(t, http.MethodPost, "/api/collections/customers", token, doc)
	require.Equal(t, http.StatusOK, w.Code)

	customers := env.store.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, "Maryam", customers[0].Name)

	// The replacement is visible through the read endpoint too.
	w = env.do(t, http.MethodGet, "/api/collections/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Maryam")
}

func TestPostCollectionInvalidBody(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleAdmin)

	w := env.do(t, http.MethodPost, "/api/collections/customers", token, "not a wrapper")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
