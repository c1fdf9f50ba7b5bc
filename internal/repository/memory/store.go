// Package memory provides the in-memory data store backing the portal.
// The store is seeded with a demo dataset at construction and guarded by
// a single RWMutex shared across the aggregate repositories.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
)

type Store struct {
	mu sync.RWMutex

	users         []*model.User
	patients      []*model.Patient
	carePlans     []*model.CarePlan
	conversations []*model.Conversation
	messages      map[uuid.UUID][]*model.Message
	reports       []*model.AnalyticsReport
	adherence     []*model.AdherencePoint
	history       map[uuid.UUID]map[model.BiometricType][]*model.BiometricReading
}

// NewStore creates a store seeded with the demo dataset.
func NewStore() *Store {
	s := &Store{
		messages: make(map[uuid.UUID][]*model.Message),
		history:  make(map[uuid.UUID]map[model.BiometricType][]*model.BiometricReading),
	}
	s.seed()
	return s
}

// clonePatient copies a patient together with its owned slices, so a
// snapshot handed out under RLock stays stable while alert creation
// mutates the live record under the write lock.
func clonePatient(p *model.Patient) *model.Patient {
	copied := *p
	copied.Conditions = append([]string(nil), p.Conditions...)
	copied.Alerts = append([]*model.Alert(nil), p.Alerts...)
	copied.Biometrics = append([]*model.BiometricReading(nil), p.Biometrics...)
	copied.CareTeam = append([]uuid.UUID(nil), p.CareTeam...)
	return &copied
}

func (s *Store) findPatient(id uuid.UUID) *model.Patient {
	for _, p := range s.patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) findUser(id uuid.UUID) *model.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}
