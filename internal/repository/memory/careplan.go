package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

type carePlanRepository struct {
	store *Store
}

func NewCarePlanRepository(store *Store) repository.CarePlanRepository {
	return &carePlanRepository{store: store}
}

// List applies search against title or description, then the status and
// patient filters. Results are always newest-updated first.
func (r *carePlanRepository) List(ctx context.Context, filter *model.CarePlanFilter) ([]*model.CarePlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if filter == nil {
		filter = &model.CarePlanFilter{}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	status := filter.Status
	if status == model.FilterAll {
		status = ""
	}
	patientID := filter.PatientID
	if patientID == model.FilterAll {
		patientID = ""
	}

	plans := make([]*model.CarePlan, 0, len(r.store.carePlans))
	for _, p := range r.store.carePlans {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if status != "" && string(p.Status) != status {
			continue
		}
		if patientID != "" && p.PatientID.String() != patientID {
			continue
		}
		plans = append(plans, p)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].UpdatedAt.After(plans[j].UpdatedAt)
	})

	return plans, nil
}

func (r *carePlanRepository) Get(ctx context.Context, id uuid.UUID) (*model.CarePlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.carePlans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *carePlanRepository) Create(ctx context.Context, plan *model.CarePlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.carePlans = append(r.store.carePlans, plan)
	return nil
}

// ListMealPlans projects the meal plan catalog out of the care plans.
// A meal plan referenced by several care plans appears once per
// reference, each entry categorized under the referencing plan's title.
func (r *carePlanRepository) ListMealPlans(ctx context.Context) ([]*model.MealPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*model.MealPlan
	for _, plan := range r.store.carePlans {
		for _, mp := range plan.MealPlans {
			entry := *mp
			entry.Category = plan.Title
			out = append(out, &entry)
		}
	}
	return out, nil
}

func (r *carePlanRepository) GetMealPlan(ctx context.Context, id uuid.UUID) (*model.MealPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, plan := range r.store.carePlans {
		for _, mp := range plan.MealPlans {
			if mp.ID == id {
				entry := *mp
				entry.Category = plan.Title
				return &entry, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}
