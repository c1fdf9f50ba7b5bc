package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository/memory"
)

func patientsWithAdherence(rates ...int) []*model.Patient {
	out := make([]*model.Patient, 0, len(rates))
	for _, r := range rates {
		out = append(out, &model.Patient{AdherenceRate: r})
	}
	return out
}

func TestAverageAdherence(t *testing.T) {
	avg, ok := AverageAdherence(patientsWithAdherence(78, 92, 65, 88))
	require.True(t, ok)
	assert.Equal(t, 81, avg)
}

func TestAverageAdherenceRounds(t *testing.T) {
	avg, ok := AverageAdherence(patientsWithAdherence(80, 81))
	require.True(t, ok)
	assert.Equal(t, 81, avg)
}

func TestAverageAdherenceEmptyRoster(t *testing.T) {
	avg, ok := AverageAdherence(nil)
	assert.False(t, ok)
	assert.Equal(t, 0, avg)
}

func TestBucketsPartitionTheRoster(t *testing.T) {
	patients := patientsWithAdherence(95, 85, 84, 70, 69, 0)

	b := Buckets(patients)
	assert.Equal(t, 2, b.High)
	assert.Equal(t, 2, b.Medium)
	assert.Equal(t, 2, b.Low)
	assert.Equal(t, len(patients), b.High+b.Medium+b.Low)
}

func TestBucketBoundaries(t *testing.T) {
	assert.Equal(t, AdherenceBuckets{Medium: 1}, Buckets(patientsWithAdherence(70)))
	assert.Equal(t, AdherenceBuckets{High: 1}, Buckets(patientsWithAdherence(85)))
	assert.Equal(t, AdherenceBuckets{Low: 1}, Buckets(patientsWithAdherence(69)))
	assert.Equal(t, AdherenceBuckets{Medium: 1}, Buckets(patientsWithAdherence(84)))
}

func TestConditionHistogram(t *testing.T) {
	patients := []*model.Patient{
		{Conditions: []string{"A", "B"}},
		{Conditions: []string{"A"}},
		{Conditions: []string{"B", "C"}},
	}

	counts := ConditionHistogram(patients)
	require.Len(t, counts, 3)

	// Counts descend; A and B tie at 2 and keep first-appearance order.
	assert.Equal(t, ConditionCount{Condition: "A", Count: 2}, counts[0])
	assert.Equal(t, ConditionCount{Condition: "B", Count: 2}, counts[1])
	assert.Equal(t, ConditionCount{Condition: "C", Count: 1}, counts[2])
}

func TestConditionHistogramEmpty(t *testing.T) {
	assert.Empty(t, ConditionHistogram(nil))
}

func newTestService() *Service {
	store := memory.NewStore()
	return NewService(
		memory.NewPatientRepository(store),
		memory.NewAlertRepository(store),
		memory.NewAnalyticsRepository(store),
	)
}

func TestOverview(t *testing.T) {
	svc := newTestService()

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, overview.PatientCount)
	// Seeded rates are 78, 92, 65, 88.
	assert.Equal(t, 81, overview.AverageAdherence)
	assert.Equal(t, 4, overview.Buckets.High+overview.Buckets.Medium+overview.Buckets.Low)
	assert.Equal(t, 4, overview.UnreadAlerts)
	// Every seeded patient carries at least one alert.
	assert.Equal(t, 4, overview.PatientsWithAlerts)
}

func TestTrendWindows(t *testing.T) {
	svc := newTestService()

	for timeframe, wantPoints := range map[string]int{
		TimeframeWeek:    8,
		TimeframeMonth:   31,
		TimeframeQuarter: 91,
	} {
		trend, err := svc.Trend(context.Background(), timeframe)
		require.NoError(t, err)
		assert.Equal(t, timeframe, trend.Timeframe)
		assert.Len(t, trend.Points, wantPoints)
	}
}

func TestTrendDefaultsToMonth(t *testing.T) {
	svc := newTestService()

	trend, err := svc.Trend(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, TimeframeMonth, trend.Timeframe)
	assert.Len(t, trend.Points, 31)
}

func TestTrendChangeComparesLastTwoPoints(t *testing.T) {
	svc := newTestService()

	trend, err := svc.Trend(context.Background(), TimeframeWeek)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(trend.Points), 2)

	last := trend.Points[len(trend.Points)-1].Average
	prev := trend.Points[len(trend.Points)-2].Average
	assert.Equal(t, last-prev, trend.Change)
}

func TestConditionsUseSeededRoster(t *testing.T) {
	svc := newTestService()

	counts, err := svc.Conditions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, counts)

	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i-1].Count, counts[i].Count)
	}
}

func TestReports(t *testing.T) {
	svc := newTestService()

	reports, err := svc.Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for _, r := range reports {
		payloads := 0
		if r.Adherence != nil {
			payloads++
		}
		if r.Biometrics != nil {
			payloads++
		}
		if r.Progress != nil {
			payloads++
		}
		assert.Equal(t, 1, payloads, "report %s should carry exactly one payload", r.Title)
	}
}
