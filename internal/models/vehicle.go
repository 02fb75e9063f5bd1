package models

import "time"

// VehicleStatus tracks where a vehicle is in the repair pipeline.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "available"
	VehicleInRepair  VehicleStatus = "in_repair"
	VehicleDelivered VehicleStatus = "delivered"
)

// Vehicle represents a customer vehicle registered at the shop.
// CustomerID may dangle after the customer is deleted; readers must treat
// that as an orphaned reference, not an error.
type Vehicle struct {
	ID            string        `json:"id"`
	PlateNumber   string        `json:"plateNumber"`
	Model         string        `json:"model"`
	Year          int           `json:"year"`
	Color         string        `json:"color"`
	Status        VehicleStatus `json:"status"`
	CustomerID    string        `json:"customerId"`
	MechanicID    string        `json:"mechanicId,omitempty"`
	LaborCosts    []LaborCost   `json:"laborCosts"`
	ReceptionDate *time.Time    `json:"receptionDate,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// VehicleUpdate lists the vehicle fields a partial update may change.
type VehicleUpdate struct {
	PlateNumber   *string        `json:"plateNumber,omitempty"`
	Model         *string        `json:"model,omitempty"`
	Year          *int           `json:"year,omitempty"`
	Color         *string        `json:"color,omitempty"`
	Status        *VehicleStatus `json:"status,omitempty"`
	MechanicID    *string        `json:"mechanicId,omitempty"`
	LaborCosts    *[]LaborCost   `json:"laborCosts,omitempty"`
	ReceptionDate *time.Time     `json:"receptionDate,omitempty"`
}

// IsValidVehicleStatus checks if a vehicle status is one of the known values.
func IsValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleAvailable, VehicleInRepair, VehicleDelivered:
		return true
	default:
		return false
	}
}
