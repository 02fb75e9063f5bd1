package store

import (
	"time"

	"github.com/garageflow/garageflow/internal/models"
)

// Users returns a copy of all staff accounts.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// User looks up an account by id.
func (s *Store) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByUsername looks up an account by username.
func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// TouchLastLogin records a successful login. Unknown ids are a no-op.
func (s *Store) TouchLastLogin(id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	now := time.Now()
	s.users[idx].LastLogin = &now
	s.mu.Unlock()

	s.persist(ColUsers)
	return true
}
