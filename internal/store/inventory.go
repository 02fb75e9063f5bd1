package store

import (
	"time"

	"github.com/garageflow/garageflow/internal/models"
)

// AddInventoryItem assigns an id and timestamps and stores the item.
func (s *Store) AddInventoryItem(item models.InventoryItem) string {
	now := time.Now()
	s.mu.Lock()
	item.ID = s.nextID()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.inventory = append(s.inventory, item)
	s.mu.Unlock()

	s.persist(ColInventory)
	return item.ID
}

// InventoryItems returns a copy of all inventory items.
func (s *Store) InventoryItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// InventoryItem looks up an item by id.
func (s *Store) InventoryItem(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.inventory {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// LowStockItems returns the items at or below their minimum quantity.
func (s *Store) LowStockItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.InventoryItem{}
	for _, item := range s.inventory {
		if item.IsLowStock() {
			out = append(out, item)
		}
	}
	return out
}

// UpdateInventoryItem merges the non-nil fields into an existing item
// and refreshes UpdatedAt. Unknown ids are a no-op and report false.
func (s *Store) UpdateInventoryItem(id string, u models.InventoryItemUpdate) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	item := &s.inventory[idx]
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Code != nil {
		item.Code = *u.Code
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.MinQuantity != nil {
		item.MinQuantity = *u.MinQuantity
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.SupplierID != nil {
		item.SupplierID = *u.SupplierID
	}
	item.UpdatedAt = time.Now()
	s.mu.Unlock()

	s.persist(ColInventory)
	return true
}

// DeleteInventoryItem removes an item if present.
func (s *Store) DeleteInventoryItem(id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ColInventory)
	}
	return removed
}
