package models

import "time"

// PartRequestStatus tracks a mechanic's part request. Transitions only
// move forward: pending -> approved|rejected -> delivered.
type PartRequestStatus string

const (
	PartRequestPending   PartRequestStatus = "pending"
	PartRequestApproved  PartRequestStatus = "approved"
	PartRequestRejected  PartRequestStatus = "rejected"
	PartRequestDelivered PartRequestStatus = "delivered"
)

// Urgency marks how badly a requested part is needed.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// RequestedPart is one line of a part request.
type RequestedPart struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Urgency  Urgency `json:"urgency"`
	Notes    string  `json:"notes,omitempty"`
}

// PartRequest represents a mechanic's request for parts for a vehicle.
type PartRequest struct {
	ID          string            `json:"id"`
	MechanicID  string            `json:"mechanicId"`
	VehicleID   string            `json:"vehicleId"`
	Parts       []RequestedPart   `json:"parts"`
	Status      PartRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requestedAt"`
	ProcessedAt *time.Time        `json:"processedAt,omitempty"`
	ProcessedBy string            `json:"processedBy,omitempty"`
}

// PartRequestUpdate lists the part request fields a partial update may
// change. ProcessedAt is derived: it is stamped the first time the
// status leaves pending.
type PartRequestUpdate struct {
	Parts       *[]RequestedPart   `json:"parts,omitempty"`
	Status      *PartRequestStatus `json:"status,omitempty"`
	ProcessedBy *string            `json:"processedBy,omitempty"`
}

func (s PartRequestStatus) rank() int {
	switch s {
	case PartRequestPending:
		return 0
	case PartRequestApproved, PartRequestRejected:
		return 1
	case PartRequestDelivered:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving to the given status is a
// forward transition. approved and rejected sit at the same stage, so
// flipping between them is not allowed either.
func (s PartRequestStatus) CanTransitionTo(to PartRequestStatus) bool {
	if to.rank() < 0 {
		return false
	}
	if s == to {
		return true
	}
	return to.rank() > s.rank()
}
