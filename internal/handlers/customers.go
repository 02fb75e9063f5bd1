package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/store"
)

// CustomerHandler exposes customer CRUD to the dashboards.
type CustomerHandler struct {
	store *store.Store
}

// NewCustomerHandler creates a customer handler over the store.
func NewCustomerHandler(s *store.Store) *CustomerHandler {
	return &CustomerHandler{store: s}
}

// createCustomerRequest is the request body for creating a customer.
type createCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email"`
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.Customers())
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := h.store.AddCustomer(models.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Email:    req.Email,
		IsActive: true,
	})
	customer, _ := h.store.Customer(id)
	respondOK(c, http.StatusCreated, customer)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var update models.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := c.Param("id")
	if !h.store.UpdateCustomer(id, update) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		return
	}
	customer, _ := h.store.Customer(id)
	respondOK(c, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/:id. Deleting is idempotent and
// never touches the customer's vehicles.
func (h *CustomerHandler) Delete(c *gin.Context) {
	deleted := h.store.DeleteCustomer(c.Param("id"))
	respondOK(c, http.StatusOK, gin.H{"deleted": deleted})
}

// Vehicles handles GET /api/customers/:id/vehicles.
func (h *CustomerHandler) Vehicles(c *gin.Context) {
	respondOK(c, http.StatusOK, h.store.VehiclesForCustomer(c.Param("id")))
}
