package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

type patientRepository struct {
	store *Store
}

func NewPatientRepository(store *Store) repository.PatientRepository {
	return &patientRepository{store: store}
}

// List applies the search and condition filters together, then sorts.
// Name ordering uses locale-aware collation; the collator is built per
// call because collate.Collator is not safe for concurrent use.
func (r *patientRepository) List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if filter == nil {
		filter = &model.PatientFilter{}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	condition := filter.Condition
	if condition == model.FilterAll {
		condition = ""
	}

	patients := make([]*model.Patient, 0, len(r.store.patients))
	for _, p := range r.store.patients {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if condition != "" && !p.HasCondition(condition) {
			continue
		}
		patients = append(patients, clonePatient(p))
	}

	field := filter.SortField
	if field == "" {
		field = model.PatientSortName
	}
	desc := filter.SortDir == model.SortDesc

	if field == model.PatientSortAdherence {
		sort.SliceStable(patients, func(i, j int) bool {
			if desc {
				i, j = j, i
			}
			return patients[i].AdherenceRate < patients[j].AdherenceRate
		})
	} else {
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(patients, func(i, j int) bool {
			if desc {
				i, j = j, i
			}
			return cl.CompareString(patients[i].Name, patients[j].Name) < 0
		})
	}

	return patients, nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if p := r.store.findPatient(id); p != nil {
		return clonePatient(p), nil
	}
	return nil, repository.ErrNotFound
}

// Create stores its own copy so later reads of the caller's struct do
// not alias the live record.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.patients = append(r.store.patients, clonePatient(patient))
	r.store.history[patient.ID] = make(map[model.BiometricType][]*model.BiometricReading)
	return nil
}

// DistinctConditions returns every condition present on the roster, in
// order of first appearance.
func (r *patientRepository) DistinctConditions(ctx context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	seen := make(map[string]struct{})
	var conditions []string
	for _, p := range r.store.patients {
		for _, c := range p.Conditions {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			conditions = append(conditions, c)
		}
	}
	return conditions, nil
}

func (r *patientRepository) BiometricHistory(ctx context.Context, patientID uuid.UUID, typ model.BiometricType) ([]*model.BiometricReading, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byType, ok := r.store.history[patientID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	readings := byType[typ]
	out := make([]*model.BiometricReading, len(readings))
	copy(out, readings)
	return out, nil
}
