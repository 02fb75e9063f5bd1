package models

import "time"

// InventoryItem represents one stocked part. SupplierID may dangle after
// the supplier is deleted; readers tolerate the orphaned reference.
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"minQuantity"`
	Price       float64   `json:"price"`
	SupplierID  string    `json:"supplierId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the item is at or below its minimum quantity.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}

// InventoryItemUpdate lists the inventory fields a partial update may
// change. UpdatedAt is refreshed on every applied update.
type InventoryItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	MinQuantity *int     `json:"minQuantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	SupplierID  *string  `json:"supplierId,omitempty"`
}
