package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// SupplierHandler exposes supplier CRUD to the dashboards.
type SupplierHandler struct {
	store *store.Store
}

// NewSupplierHandler creates a supplier handler over the store.
func NewSupplierHandler(s *store.Store) *SupplierHandler {
	return &SupplierHandler{store: s}
}

// createSupplierRequest is the request body for registering a supplier.
type createSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email"`
}

// List handles GET /api/suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.Suppliers())
}

// Create handles POST /api/suppliers.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req createSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := h.store.AddSupplier(models.Supplier{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Email:    req.Email,
		IsActive: true,
	})
	supplier, _ := h.store.Supplier(id)
	respondOK(c, http.StatusCreated, supplier)
}

// Update handles PUT /api/suppliers/:id.
func (h *SupplierHandler) Update(c *gin.Context) {
	var update models.SupplierUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := c.Param("id")
	if !h.store.UpdateSupplier(id, update) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Supplier not found")
		return
	}
	supplier, _ := h.store.Supplier(id)
	respondOK(c, http.StatusOK, supplier)
}

// Delete handles DELETE /api/suppliers/:id. Inventory items keep their
// supplier reference.
func (h *SupplierHandler) Delete(c *gin.Context) {
	deleted := h.store.DeleteSupplier(c.Param("id"))
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}
