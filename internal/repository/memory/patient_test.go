package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

func names(patients []*model.Patient) []string {
	out := make([]string, 0, len(patients))
	for _, p := range patients {
		out = append(out, p.Name)
	}
	return out
}

func TestListPatientsDefaultSort(t *testing.T) {
	repo := NewPatientRepository(NewStore())

	patients, err := repo.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Smith", "John Doe", "Maria Garcia", "Robert Johnson"}, names(patients))
}

func TestListPatientsSearchIsCaseInsensitive(t *testing.T) {
	repo := NewPatientRepository(NewStore())

	patients, err := repo.List(context.Background(), &model.PatientFilter{Search: "JOHN"})
	require.NoError(t, err)

	// Substring match hits both John Doe and Robert Johnson.
	assert.Equal(t, []string{"John Doe", "Robert Johnson"}, names(patients))
}

func TestListPatientsFiltersCombineWithAnd(t *testing.T) {
	repo := NewPatientRepository(NewStore())
	ctx := context.Background()

	both, err := repo.List(ctx, &model.PatientFilter{Search: "john", Condition: "Hypertension"})
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe"}, names(both))

	// The same predicates in any pairing produce the same set.
	searchOnly, err := repo.List(ctx, &model.PatientFilter{Search: "john"})
	require.NoError(t, err)
	conditionOnly, err := repo.List(ctx, &model.PatientFilter{Condition: "Hypertension"})
	require.NoError(t, err)

	intersection := 0
	for _, p := range searchOnly {
		for _, q := range conditionOnly {
			if p.ID == q.ID {
				intersection++
			}
		}
	}
	assert.Equal(t, len(both), intersection)
}

func TestListPatientsConditionAllDisablesFilter(t *testing.T) {
	repo := NewPatientRepository(NewStore())

	patients, err := repo.List(context.Background(), &model.PatientFilter{Condition: model.FilterAll})
	require.NoError(t, err)
	assert.Len(t, patients, 4)
}

func TestListPatientsSortByAdherence(t *testing.T) {
	repo := NewPatientRepository(NewStore())
	ctx := context.Background()

	asc, err := repo.List(ctx, &model.PatientFilter{SortField: model.PatientSortAdherence, SortDir: model.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Robert Johnson", "John Doe", "Maria Garcia", "Jane Smith"}, names(asc))

	desc, err := repo.List(ctx, &model.PatientFilter{SortField: model.PatientSortAdherence, SortDir: model.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Smith", "Maria Garcia", "John Doe", "Robert Johnson"}, names(desc))
}

func TestListPatientsSortByNameDesc(t *testing.T) {
	repo := NewPatientRepository(NewStore())

	patients, err := repo.List(context.Background(), &model.PatientFilter{SortField: model.PatientSortName, SortDir: model.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Robert Johnson", "Maria Garcia", "John Doe", "Jane Smith"}, names(patients))
}

func TestGetPatientNotFound(t *testing.T) {
	repo := NewPatientRepository(NewStore())

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreatePatientAppearsInList(t *testing.T) {
	repo := NewPatientRepository(NewStore())
	ctx := context.Background()

	created := &model.Patient{
		ID:            uuid.New(),
		Name:          "Alice Brown",
		AdherenceRate: 100,
	}
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Brown", got.Name)

	patients, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, patients, 5)
	assert.Equal(t, "Alice Brown", patients[0].Name)
}

func TestDistinctConditionsKeepFirstAppearanceOrder(t *testing.T) {
	repo := NewPatientRepository(NewStore())

	conditions, err := repo.DistinctConditions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Type 2 Diabetes", "Hypertension",
		"Coronary Artery Disease", "COPD",
		"Obesity", "Pre-diabetes",
		"Type 1 Diabetes", "Celiac Disease",
	}, conditions)
}

func TestListedPatientsAreIsolatedFromLaterWrites(t *testing.T) {
	store := NewStore()
	patients := NewPatientRepository(store)
	alerts := NewAlertRepository(store)
	ctx := context.Background()

	listed, err := patients.List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, listed)
	snapshot := listed[0]
	before := len(snapshot.Alerts)

	require.NoError(t, alerts.Create(ctx, snapshot.ID, &model.Alert{
		ID:        uuid.New(),
		Type:      model.AlertMissedMeal,
		Severity:  model.SeverityLow,
		Message:   "Missed scheduled dinner",
		Timestamp: time.Now().UTC(),
	}))

	// The earlier snapshot keeps its alert count; a fresh read sees the
	// new alert.
	assert.Len(t, snapshot.Alerts, before)

	fresh, err := patients.Get(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Len(t, fresh.Alerts, before+1)
}

func TestPatientSerializationDuringAlertWrites(t *testing.T) {
	store := NewStore()
	patients := NewPatientRepository(store)
	alerts := NewAlertRepository(store)
	ctx := context.Background()

	listed, err := patients.List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, listed)
	target := listed[0].ID

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = alerts.Create(ctx, target, &model.Alert{
				ID:        uuid.New(),
				Type:      model.AlertAbnormalReading,
				Severity:  model.SeverityMedium,
				Message:   "Glucose above range",
				Timestamp: time.Now().UTC(),
			})
		}
	}()

	for i := 0; i < 50; i++ {
		snapshot, err := patients.List(ctx, nil)
		require.NoError(t, err)
		_, err = json.Marshal(snapshot)
		require.NoError(t, err)
	}
	<-done
}

func TestBiometricHistory(t *testing.T) {
	store := NewStore()
	repo := NewPatientRepository(store)
	ctx := context.Background()

	patients, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, patients)

	readings, err := repo.BiometricHistory(ctx, patients[0].ID, model.BiometricGlucose)
	require.NoError(t, err)
	require.Len(t, readings, 15)

	for _, r := range readings {
		assert.Equal(t, model.BiometricGlucose, r.Type)
		assert.Equal(t, "mg/dL", r.Unit)
	}

	_, err = repo.BiometricHistory(ctx, uuid.New(), model.BiometricGlucose)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
