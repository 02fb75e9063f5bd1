package store

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/garageflow/garageflow/internal/models"
	"github.com/garageflow/garageflow/internal/storage"
)

// seedAccount describes one fixed staff account created on first run.
type seedAccount struct {
	id       string
	username string
	password string
	name     string
	role     models.Role
}

// The fixed accounts the dashboards expect on a fresh install. Staff
// passwords are meant to be changed by the admin after handover.
var seedAccounts = []seedAccount{
	{"1", "admin", "admin123", "Admin", models.RoleAdmin},
	{"2", "mohammad", "mech1234", "Mohammad Rezaei", models.RoleMechanic},
	{"3", "ali", "mech1234", "Ali Karimi", models.RoleMechanic},
	{"4", "reza", "mech1234", "Reza Ahmadi", models.RoleMechanic},
	{"5", "sara", "front1234", "Sara Hosseini", models.RoleReception},
	{"6", "hamid", "stock1234", "Hamid Moradi", models.RoleWarehouse},
}

// defaultDocuments registers the first-run document for every
// collection: list collections start empty, users starts with the six
// seeded accounts. Defaults are lazy so bcrypt hashing only runs when a
// users file actually has to be seeded.
func defaultDocuments() map[string]storage.DefaultFunc {
	defaults := make(map[string]storage.DefaultFunc, len(Collections))
	for _, name := range Collections {
		if name == ColUsers {
			defaults[name] = seedUsers
			continue
		}
		defaults[name] = emptyCollection(name)
	}
	return defaults
}

func emptyCollection(name string) storage.DefaultFunc {
	return func() (json.RawMessage, error) {
		return json.Marshal(map[string]any{name: []any{}})
	}
}

func seedUsers() (json.RawMessage, error) {
	now := time.Now()
	users := make([]models.User, 0, len(seedAccounts))
	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %q: %w", acc.username, err)
		}
		users = append(users, models.User{
			ID:           acc.id,
			Username:     acc.username,
			PasswordHash: string(hash),
			Name:         acc.name,
			Role:         acc.role,
			IsActive:     true,
			CreatedAt:    now,
		})
	}
	return wrap(ColUsers, users)
}
