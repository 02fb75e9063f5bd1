package store

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/garageflow/garageflow/internal/models"
)

// AddPartRequest assigns an id and request time and stores the request.
func (s *Store) AddPartRequest(pr models.PartRequest) string {
	s.mu.Lock()
	pr.ID = s.nextID()
	pr.RequestedAt = time.Now()
	if pr.Status == "" {
		pr.Status = models.PartRequestPending
	}
	s.partRequests = append(s.partRequests, pr)
	s.mu.Unlock()

	s.persist(ColPartRequests)
	return pr.ID
}

// PartRequests returns a copy of all part requests.
func (s *Store) PartRequests() []models.PartRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PartRequest, len(s.partRequests))
	copy(out, s.partRequests)
	return out
}

// PartRequest looks up a part request by id.
func (s *Store) PartRequest(id string) (models.PartRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pr := range s.partRequests {
		if pr.ID == id {
			return pr, true
		}
	}
	return models.PartRequest{}, false
}

// PendingPartRequests returns the requests still waiting for a decision.
func (s *Store) PendingPartRequests() []models.PartRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.PartRequest{}
	for _, pr := range s.partRequests {
		if pr.Status == models.PartRequestPending {
			out = append(out, pr)
		}
	}
	return out
}

// UpdatePartRequest merges the non-nil fields into an existing request.
// ProcessedAt is stamped exactly once, the first time the status leaves
// pending. Backward status transitions are ignored. Unknown ids are a
// no-op and report false.
func (s *Store) UpdatePartRequest(id string, u models.PartRequestUpdate) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.partRequests {
		if s.partRequests[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	pr := &s.partRequests[idx]
	if u.Parts != nil {
		pr.Parts = *u.Parts
	}
	if u.ProcessedBy != nil {
		pr.ProcessedBy = *u.ProcessedBy
	}
	if u.Status != nil {
		if pr.Status.CanTransitionTo(*u.Status) {
			pr.Status = *u.Status
			if pr.Status != models.PartRequestPending && pr.ProcessedAt == nil {
				now := time.Now()
				pr.ProcessedAt = &now
			}
		} else {
			log.WithFields(log.Fields{
				"partRequest": pr.ID,
				"from":        pr.Status,
				"to":          *u.Status,
			}).Warn("ignoring backward part request status transition")
		}
	}
	s.mu.Unlock()

	s.persist(ColPartRequests)
	return true
}

// DeletePartRequest removes a part request if present.
func (s *Store) DeletePartRequest(id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.partRequests {
		if s.partRequests[i].ID == id {
			s.partRequests = append(s.partRequests[:i], s.partRequests[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ColPartRequests)
	}
	return removed
}
