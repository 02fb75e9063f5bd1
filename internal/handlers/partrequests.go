package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// PartRequestHandler exposes part request CRUD to the dashboards.
type PartRequestHandler struct {
	store *store.Store
}

// NewPartRequestHandler creates a part request handler over the store.
func NewPartRequestHandler(s *store.Store) *PartRequestHandler {
	return &PartRequestHandler{store: s}
}

// createPartRequestRequest is the request body for filing a part request.
type createPartRequestRequest struct {
	MechanicID string                 `json:"mechanicId" binding:"required"`
	VehicleID  string                 `json:"vehicleId" binding:"required"`
	Parts      []models.RequestedPart `json:"parts" binding:"required,min=1"`
}

// List handles GET /api/part-requests.
func (h *PartRequestHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.PartRequests())
}

// Pending handles GET /api/part-requests/pending.
func (h *PartRequestHandler) Pending(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.PendingPartRequests())
}

// Create handles POST /api/part-requests.
func (h *PartRequestHandler) Create(c *gin.Context) {
	var req createPartRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := h.store.AddPartRequest(models.PartRequest{
		MechanicID: req.MechanicID,
		VehicleID:  req.VehicleID,
		Parts:      req.Parts,
		Status:     models.PartRequestPending,
	})
	request, _ := h.store.PartRequest(id)
	respondOK(c, http.StatusCreated, request)
}

// Update handles PUT /api/part-requests/:id.
func (h *PartRequestHandler) Update(c *gin.Context) {
	var update models.PartRequestUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := c.Param("id")
	if !h.store.UpdatePartRequest(id, update) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Part request not found")
		return
	}
	request, _ := h.store.PartRequest(id)
	respondOK(c, http.StatusOK, request)
}

// Delete handles DELETE /api/part-requests/:id.
func (h *PartRequestHandler) Delete(c *gin.Context) {
	deleted := h.store.DeletePartRequest(c.Param("id"))
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}
