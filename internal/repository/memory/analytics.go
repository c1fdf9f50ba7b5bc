package memory

import (
	"context"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

type analyticsRepository struct {
	store *Store
}

func NewAnalyticsRepository(store *Store) repository.AnalyticsRepository {
	return &analyticsRepository{store: store}
}

func (r *analyticsRepository) ListReports(ctx context.Context) ([]*model.AnalyticsReport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reports := make([]*model.AnalyticsReport, len(r.store.reports))
	copy(reports, r.store.reports)
	return reports, nil
}

// AdherenceHistory returns the last days+1 points of the roster trend,
// oldest first.
func (r *analyticsRepository) AdherenceHistory(ctx context.Context, days int) ([]*model.AdherencePoint, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	points := r.store.adherence
	if days > 0 && days+1 < len(points) {
		points = points[len(points)-(days+1):]
	}
	out := make([]*model.AdherencePoint, len(points))
	copy(out, points)
	return out, nil
}
