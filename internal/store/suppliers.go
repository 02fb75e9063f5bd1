package store

import (
	"time"

	"github.com/garageflow/garageflow/internal/models"
)

// AddSupplier assigns an id and creation time and stores the supplier.
func (s *Store) AddSupplier(sup models.Supplier) string {
	s.mu.Lock()
	sup.ID = s.nextID()
	sup.CreatedAt = time.Now()
	s.suppliers = append(s.suppliers, sup)
	s.mu.Unlock()

	s.persist(ColSuppliers)
	return sup.ID
}

// Suppliers returns a copy of all suppliers.
func (s *Store) Suppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

// Supplier looks up a supplier by id.
func (s *Store) Supplier(id string) (models.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sup := range s.suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return models.Supplier{}, false
}

// UpdateSupplier merges the non-nil fields into an existing supplier.
// Unknown ids are a no-op and report false.
func (s *Store) UpdateSupplier(id string, u models.SupplierUpdate) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	sup := &s.suppliers[idx]
	if u.Name != nil {
		sup.Name = *u.Name
	}
	if u.Phone != nil {
		sup.Phone = *u.Phone
	}
	if u.Address != nil {
		sup.Address = *u.Address
	}
	if u.Email != nil {
		sup.Email = *u.Email
	}
	if u.IsActive != nil {
		sup.IsActive = *u.IsActive
	}
	s.mu.Unlock()

	s.persist(ColSuppliers)
	return true
}

// DeleteSupplier removes a supplier if present. Inventory items keep
// their supplierId even when it no longer resolves.
func (s *Store) DeleteSupplier(id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ColSuppliers)
	}
	return removed
}
