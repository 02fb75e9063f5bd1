package models

import "time"

// JobCardStatus tracks the life of a job card. Transitions only move
// forward: pending -> in_progress -> completed.
type JobCardStatus string

const (
	JobCardPending    JobCardStatus = "pending"
	JobCardInProgress JobCardStatus = "in_progress"
	JobCardCompleted  JobCardStatus = "completed"
)

// LaborCost is one line of labor billed on a job card or vehicle.
type LaborCost struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourlyRate"`
	TotalCost   float64 `json:"totalCost"`
}

// PartUsed is one part consumed on a job card.
type PartUsed struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// JobCard represents one repair job on a vehicle. TotalCost is derived
// from PartsUsed and LaborCosts on every update and must not be trusted
// independently of them.
type JobCard struct {
	ID          string        `json:"id"`
	VehicleID   string        `json:"vehicleId"`
	CustomerID  string        `json:"customerId"`
	MechanicID  string        `json:"mechanicId"`
	Status      JobCardStatus `json:"status"`
	Issues      []string      `json:"issues"`
	PartsUsed   []PartUsed    `json:"partsUsed"`
	LaborCosts  []LaborCost   `json:"laborCosts"`
	TotalCost   float64       `json:"totalCost"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// JobCardUpdate lists the job card fields a partial update may change.
// TotalCost, UpdatedAt and CompletedAt are derived and never settable.
type JobCardUpdate struct {
	MechanicID *string        `json:"mechanicId,omitempty"`
	Status     *JobCardStatus `json:"status,omitempty"`
	Issues     *[]string      `json:"issues,omitempty"`
	PartsUsed  *[]PartUsed    `json:"partsUsed,omitempty"`
	LaborCosts *[]LaborCost   `json:"laborCosts,omitempty"`
}

// rank orders job card statuses along the forward-only pipeline.
func (s JobCardStatus) rank() int {
	switch s {
	case JobCardPending:
		return 0
	case JobCardInProgress:
		return 1
	case JobCardCompleted:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving to the given status is a
// forward transition. Re-asserting the current status is allowed.
func (s JobCardStatus) CanTransitionTo(to JobCardStatus) bool {
	return to.rank() >= s.rank() && to.rank() >= 0
}
