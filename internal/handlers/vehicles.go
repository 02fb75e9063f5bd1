package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// VehicleHandler exposes vehicle CRUD to the dashboards.
type VehicleHandler struct {
	store *store.Store
}

// NewVehicleHandler creates a vehicle handler over the store.
func NewVehicleHandler(s *store.Store) *VehicleHandler {
	return &VehicleHandler{store: s}
}

// createVehicleRequest is the request body for registering a vehicle.
type createVehicleRequest struct {
	PlateNumber   string     `json:"plateNumber" binding:"required"`
	Model         string     `json:"model" binding:"required"`
	Year          int        `json:"year"`
	Color         string     `json:"color"`
	CustomerID    string     `json:"customerId" binding:"required"`
	MechanicID    string     `json:"mechanicId"`
	ReceptionDate *time.Time `json:"receptionDate"`
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.Vehicles())
}

// Create handles POST /api/vehicles. The customer must exist at
// creation time; this boundary enforces that, not the store.
func (h *VehicleHandler) Create(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if _, found := h.store.Customer(req.CustomerID); !found {
		respondError(c, http.StatusBadRequest, "CUSTOMER_NOT_FOUND", "Referenced customer does not exist")
		return
	}

	id := h.store.AddVehicle(models.Vehicle{
		PlateNumber:   req.PlateNumber,
		Model:         req.Model,
		Year:          req.Year,
		Color:         req.Color,
		Status:        models.VehicleAvailable,
		CustomerID:    req.CustomerID,
		MechanicID:    req.MechanicID,
		ReceptionDate: req.ReceptionDate,
	})
	vehicle, _ := h.store.Vehicle(id)
	respondOK(c, http.StatusCreated, vehicle)
}

// Update handles PUT /api/vehicles/:id.
func (h *VehicleHandler) Update(c *gin.Context) {
	var update models.VehicleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if update.Status != nil && !models.IsValidVehicleStatus(*update.Status) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vehicle status")
		return
	}

	id := c.Param("id")
	if !h.store.UpdateVehicle(id, update) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
		return
	}
	vehicle, _ := h.store.Vehicle(id)
	respondOK(c, http.StatusOK, vehicle)
}

// Delete handles DELETE /api/vehicles/:id. Job cards for the vehicle
// stay behind.
func (h *VehicleHandler) Delete(c *gin.Context) {
	deleted := h.store.DeleteVehicle(c.Param("id"))
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}

// JobCards handles GET /api/vehicles/:id/job-cards.
func (h *VehicleHandler) JobCards(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.JobCardsForVehicle(c.Param("id")))
}
