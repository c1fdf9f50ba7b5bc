package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

type alertRepository struct {
	store *Store
}

func NewAlertRepository(store *Store) repository.AlertRepository {
	return &alertRepository{store: store}
}

// List flattens the per-patient alerts into one feed, unread first and
// newest first within each group.
func (r *alertRepository) List(ctx context.Context) ([]*model.Alert, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var alerts []*model.Alert
	for _, p := range r.store.patients {
		alerts = append(alerts, p.Alerts...)
	}
	sortAlerts(alerts)
	return alerts, nil
}

func (r *alertRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Alert, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p := r.store.findPatient(patientID)
	if p == nil {
		return nil, repository.ErrNotFound
	}
	alerts := make([]*model.Alert, len(p.Alerts))
	copy(alerts, p.Alerts)
	sortAlerts(alerts)
	return alerts, nil
}

// Create attaches the alert to its owning patient. PatientID is stamped
// here so the owner reference cannot drift from the owning list.
func (r *alertRepository) Create(ctx context.Context, patientID uuid.UUID, alert *model.Alert) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p := r.store.findPatient(patientID)
	if p == nil {
		return repository.ErrNotFound
	}
	alert.PatientID = p.ID
	p.Alerts = append(p.Alerts, alert)
	return nil
}

func (r *alertRepository) UnreadCount(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, p := range r.store.patients {
		for _, a := range p.Alerts {
			if !a.IsRead {
				count++
			}
		}
	}
	return count, nil
}

func sortAlerts(alerts []*model.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].IsRead != alerts[j].IsRead {
			return !alerts[i].IsRead
		}
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
}
