package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// InventoryHandler exposes inventory CRUD to the dashboards.
type InventoryHandler struct {
	store *store.Store
}

// NewInventoryHandler creates an inventory handler over the store.
func NewInventoryHandler(s *store.Store) *InventoryHandler {
	return &InventoryHandler{store: s}
}

// createInventoryItemRequest is the request body for stocking a part.
type createInventoryItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code" binding:"required"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"minQuantity"`
	Price       float64 `json:"price"`
	SupplierID  string  `json:"supplierId"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.InventoryItems())
}

// LowStock handles GET /api/inventory/low-stock.
func (h *InventoryHandler) LowStock(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.LowStockItems())
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req createInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := h.store.AddInventoryItem(models.InventoryItem{
		Name:        req.Name,
		Code:        req.Code,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
	})
	item, _ := h.store.InventoryItem(id)
	respondOK(c, http.StatusCreated, item)
}

// Update handles PUT /api/inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	var update models.InventoryItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := c.Param("id")
	if !h.store.UpdateInventoryItem(id, update) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found")
		return
	}
	item, _ := h.store.InventoryItem(id)
	respondOK(c, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	deleted := h.store.DeleteInventoryItem(c.Param("id"))
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}
