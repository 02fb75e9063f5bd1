package store

import (
	"time"

	"github.com/garageflow/garageflow/internal/models"
)

// AddVehicle assigns an id and creation time, stores the vehicle and
// returns the id. The store does not verify CustomerID; that check
// belongs to the boundary that accepted the input.
func (s *Store) AddVehicle(v models.Vehicle) string {
	s.mu.Lock()
	v.ID = s.nextID()
	v.CreatedAt = time.Now()
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}
	s.vehicles = append(s.vehicles, v)
	s.mu.Unlock()

	s.persist(ColVehicles)
	return v.ID
}

// Vehicles returns a copy of all vehicles.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Vehicle looks up a vehicle by id.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// VehiclesForCustomer returns the vehicles referencing a customer id,
// whether or not that customer still exists.
func (s *Store) VehiclesForCustomer(customerID string) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Vehicle{}
	for _, v := range s.vehicles {
		if v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out
}

// UpdateVehicle merges the non-nil fields into an existing vehicle.
// Unknown ids are a no-op and report false.
func (s *Store) UpdateVehicle(id string, u models.VehicleUpdate) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	v := &s.vehicles[idx]
	if u.PlateNumber != nil {
		v.PlateNumber = *u.PlateNumber
	}
	if u.Model != nil {
		v.Model = *u.Model
	}
	if u.Year != nil {
		v.Year = *u.Year
	}
	if u.Color != nil {
		v.Color = *u.Color
	}
	if u.Status != nil && models.IsValidVehicleStatus(*u.Status) {
		v.Status = *u.Status
	}
	if u.MechanicID != nil {
		v.MechanicID = *u.MechanicID
	}
	if u.LaborCosts != nil {
		v.LaborCosts = *u.LaborCosts
	}
	if u.ReceptionDate != nil {
		v.ReceptionDate = u.ReceptionDate
	}
	s.mu.Unlock()

	s.persist(ColVehicles)
	return true
}

// DeleteVehicle removes a vehicle if present. Job cards referencing the
// vehicle are left untouched.
func (s *Store) DeleteVehicle(id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ColVehicles)
	}
	return removed
}
