package store

import (
	"time"

	"github.com/garageflow/garageflow/internal/models"
)

// AddCustomer assigns an id and creation time, stores the customer and
// returns the id before the write hits disk.
func (s *Store) AddCustomer(c models.Customer) string {
	s.mu.Lock()
	c.ID = s.nextID()
	c.CreatedAt = time.Now()
	s.customers = append(s.customers, c)
	s.mu.Unlock()

	s.persist(ColCustomers)
	return c.ID
}

// Customers returns a copy of all customers.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Customer looks up a customer by id.
func (s *Store) Customer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// UpdateCustomer merges the non-nil fields into an existing customer.
// Unknown ids are a no-op and report false.
func (s *Store) UpdateCustomer(id string, u models.CustomerUpdate) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	c := &s.customers[idx]
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	s.mu.Unlock()

	s.persist(ColCustomers)
	return true
}

// DeleteCustomer removes a customer if present. Vehicles referencing the
// customer are left untouched; the dangling reference is intentional.
func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ColCustomers)
	}
	return removed
}
