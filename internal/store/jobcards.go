package store

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/garageflow/garageflow/internal/models"
)

// AddJobCard assigns an id and timestamps, derives the total cost and
// stores the job card.
func (s *Store) AddJobCard(jc models.JobCard) string {
	now := time.Now()
	s.mu.Lock()
	jc.ID = s.nextID()
	jc.CreatedAt = now
	jc.UpdatedAt = now
	if jc.Status == "" {
		jc.Status = models.JobCardPending
	}
	jc.TotalCost = jobCardTotal(jc)
	s.jobCards = append(s.jobCards, jc)
	s.mu.Unlock()

	s.persist(ColJobCards)
	return jc.ID
}

// JobCards returns a copy of all job cards.
func (s *Store) JobCards() []models.JobCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JobCard, len(s.jobCards))
	copy(out, s.jobCards)
	return out
}

// JobCard looks up a job card by id.
func (s *Store) JobCard(id string) (models.JobCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, jc := range s.jobCards {
		if jc.ID == id {
			return jc, true
		}
	}
	return models.JobCard{}, false
}

// JobCardsForVehicle returns the job cards referencing a vehicle id,
// whether or not that vehicle still exists.
func (s *Store) JobCardsForVehicle(vehicleID string) []models.JobCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.JobCard{}
	for _, jc := range s.jobCards {
		if jc.VehicleID == vehicleID {
			out = append(out, jc)
		}
	}
	return out
}

// UpdateJobCard merges the non-nil fields into an existing job card and
// recomputes every derived field in one place: TotalCost always,
// UpdatedAt always, CompletedAt exactly once when the status first
// becomes completed. Backward status transitions are ignored. Unknown
// ids are a no-op and report false.
//
// Completing a job card deliberately does not touch the vehicle; any
// vehicle status change is a separate, explicit call by the caller.
func (s *Store) UpdateJobCard(id string, u models.JobCardUpdate) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.jobCards {
		if s.jobCards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	applyJobCardUpdate(&s.jobCards[idx], u)
	s.mu.Unlock()

	s.persist(ColJobCards)
	return true
}

// applyJobCardUpdate is the single place derived job card fields are
// recomputed.
func applyJobCardUpdate(jc *models.JobCard, u models.JobCardUpdate) {
	now := time.Now()
	if u.MechanicID != nil {
		jc.MechanicID = *u.MechanicID
	}
	if u.Issues != nil {
		jc.Issues = *u.Issues
	}
	if u.PartsUsed != nil {
		jc.PartsUsed = *u.PartsUsed
	}
	if u.LaborCosts != nil {
		jc.LaborCosts = *u.LaborCosts
	}
	if u.Status != nil {
		if jc.Status.CanTransitionTo(*u.Status) {
			jc.Status = *u.Status
		} else {
			log.WithFields(log.Fields{
				"jobCard": jc.ID,
				"from":    jc.Status,
				"to":      *u.Status,
			}).Warn("ignoring backward job card status transition")
		}
	}
	jc.TotalCost = jobCardTotal(*jc)
	jc.UpdatedAt = now
	if jc.Status == models.JobCardCompleted && jc.CompletedAt == nil {
		jc.CompletedAt = &now
	}
}

// jobCardTotal derives the job card total from parts and labor.
func jobCardTotal(jc models.JobCard) float64 {
	var total float64
	for _, p := range jc.PartsUsed {
		total += p.Price * float64(p.Quantity)
	}
	for _, l := range jc.LaborCosts {
		total += l.TotalCost
	}
	return total
}

// DeleteJobCard removes a job card if present.
func (s *Store) DeleteJobCard(id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.jobCards {
		if s.jobCards[i].ID == id {
			s.jobCards = append(s.jobCards[:i], s.jobCards[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ColJobCards)
	}
	return removed
}
