package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageflow/garageflow/internal/models"
)

func TestCreateAndListCustomers(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	w := env.do(t, http.MethodPost, "/api/customers", token, map[string]any{
		"name":    "Ali",
		"phone":   "09121234567",
		"address": "Tehran",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Ali", data["name"])
	assert.Equal(t, true, data["isActive"])

	w = env.do(t, http.MethodGet, "/api/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ali")
}

func TestCreateCustomerValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	w := env.do(t, http.MethodPost, "/api/customers", token, map[string]any{"name": "Ali"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCustomer(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	id := env.store.AddCustomer(models.Customer{Name: "Ali", Phone: "0912", Address: "Tehran"})

	w := env.do(t, http.MethodPut, "/api/customers/"+id, token, map[string]any{"phone": "0935"})
	require.Equal(t, http.StatusOK, w.Code)

	c, _ := env.store.Customer(id)
	assert.Equal(t, "0935", c.Phone)
	assert.Equal(t, "Ali", c.Name)
}

func TestUpdateMissingCustomer(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	w := env.do(t, http.MethodPut, "/api/customers/404404", token, map[string]any{"phone": "0935"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomerIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	id := env.store.AddCustomer(models.Customer{Name: "Ali"})

	w := env.do(t, http.MethodDelete, "/api/customers/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["data"].(map[string]any)["deleted"])

	w = env.do(t, http.MethodDelete, "/api/customers/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["data"].(map[string]any)["deleted"])
}

func TestCustomerVehiclesQuery(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	customerID := env.store.AddCustomer(models.Customer{Name: "Ali"})
	env.store.AddVehicle(models.Vehicle{PlateNumber: "12-A-345", CustomerID: customerID})

	w := env.do(t, http.MethodGet, "/api/customers/"+customerID+"/vehicles", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "12-A-345")
}
