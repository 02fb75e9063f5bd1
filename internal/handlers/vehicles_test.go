package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageflow/garageflow/internal/models"
)

func TestCreateVehicleRequiresExistingCustomer(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	w := env.do(t, http.MethodPost, "/api/vehicles", token, map[string]any{
		"plateNumber": "12-A-345",
		"model":       "Peugeot 206",
		"customerId":  "missing",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", errBody["code"])
}

func TestCreateVehicle(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleReception)

	customerID := env.store.AddCustomer(models.Customer{Name: "Ali"})
	w := env.do(t, http.MethodPost, "/api/vehicles", token, map[string]any{
		"plateNumber": "12-A-345",
		"model":       "Peugeot 206",
		"year":        2019,
		"color":       "white",
		"customerId":  customerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, string(models.VehicleAvailable), data["status"])
	assert.Equal(t, customerID, data["customerId"])
}

func TestUpdateVehicleRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleMechanic)

	customerID := env.store.AddCustomer(models.Customer{Name: "Ali"})
	vehicleID := env.store.AddVehicle(models.Vehicle{PlateNumber: "12-A-345", CustomerID: customerID})

	w := env.do(t, http.MethodPut, "/api/vehicles/"+vehicleID, token, map[string]any{"status": "scrapped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/vehicles/"+vehicleID, token, map[string]any{"status": "in_repair"})
	require.Equal(t, http.StatusOK, w.Code)

	v, _ := env.store.Vehicle(vehicleID)
	assert.Equal(t, models.VehicleInRepair, v.Status)
}

func TestVehicleJobCardsQuery(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, models.RoleMechanic)

	vehicleID := env.store.AddVehicle(models.Vehicle{PlateNumber: "12-A-345", CustomerID: "c1"})
	env.store.AddJobCard(models.JobCard{VehicleID: vehicleID, CustomerID: "c1", MechanicID: "2", Issues: []string{"engine noise"}})

	w := env.do(t, http.MethodGet, "/api/vehicles/"+vehicleID+"/job-cards", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "engine noise")
}
