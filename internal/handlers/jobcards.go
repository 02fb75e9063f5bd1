package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// JobCardHandler exposes job card CRUD to the dashboards.
type JobCardHandler struct {
	store *store.Store
}

// NewJobCardHandler creates a job card handler over the store.
func NewJobCardHandler(s *store.Store) *JobCardHandler {
	return &JobCardHandler{store: s}
}

// createJobCardRequest is the request body for opening a job card.
type createJobCardRequest struct {
	VehicleID  string             `json:"vehicleId" binding:"required"`
	CustomerID string             `json:"customerId" binding:"required"`
	MechanicID string             `json:"mechanicId" binding:"required"`
	Issues     []string           `json:"issues"`
	PartsUsed  []models.PartUsed  `json:"partsUsed"`
	LaborCosts []models.LaborCost `json:"laborCosts"`
}

// List handles GET /api/job-cards.
func (h *JobCardHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.JobCards())
}

// Create handles POST /api/job-cards.
func (h *JobCardHandler) Create(c *gin.Context) {
	var req createJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if _, found := h.store.Vehicle(req.VehicleID); !found {
		respondError(c, http.StatusBadRequest, "VEHICLE_NOT_FOUND", "Referenced vehicle does not exist")
		return
	}

	id := h.store.AddJobCard(models.JobCard{
		VehicleID:  req.VehicleID,
		CustomerID: req.CustomerID,
		MechanicID: req.MechanicID,
		Status:     models.JobCardPending,
		Issues:     req.Issues,
		PartsUsed:  req.PartsUsed,
		LaborCosts: req.LaborCosts,
	})
	jobCard, _ := h.store.JobCard(id)
	respondOK(c, http.StatusCreated, jobCard)
}

// Update handles PUT /api/job-cards/:id. Completing a job card does not
// change the vehicle's status; the dashboard issues that as its own
// call when it wants it.
func (h *JobCardHandler) Update(c *gin.Context) {
	var update models.JobCardUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := c.Param("id")
	if !h.store.UpdateJobCard(id, update) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Job card not found")
		return
	}
	jobCard, _ := h.store.JobCard(id)
	respondOK(c, http.StatusOK, jobCard)
}

// Delete handles DELETE /api/job-cards/:id.
func (h *JobCardHandler) Delete(c *gin.Context) {
	deleted := h.store.DeleteJobCard(c.Param("id"))
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}
