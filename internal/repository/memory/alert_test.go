package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

func TestListAlertsUnreadFirstThenNewest(t *testing.T) {
	repo := NewAlertRepository(NewStore())

	alerts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 5)

	// 4 unread seed alerts precede the single read one.
	for i, a := range alerts {
		if i < 4 {
			assert.False(t, a.IsRead)
		} else {
			assert.True(t, a.IsRead)
		}
	}

	// Within the unread group timestamps descend.
	for i := 1; i < 4; i++ {
		assert.False(t, alerts[i-1].Timestamp.Before(alerts[i].Timestamp))
	}
}

func TestUnreadCount(t *testing.T) {
	repo := NewAlertRepository(NewStore())

	count, err := repo.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestCreateAlertStampsOwner(t *testing.T) {
	store := NewStore()
	repo := NewAlertRepository(store)
	ctx := context.Background()

	patients, err := NewPatientRepository(store).List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, patients)
	owner := patients[0]

	alert := &model.Alert{
		ID:        uuid.New(),
		PatientID: uuid.New(), // deliberately wrong, repository overrides
		Type:      model.AlertMissedMeal,
		Severity:  model.SeverityLow,
		Message:   "Missed breakfast meal",
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, owner.ID, alert))
	assert.Equal(t, owner.ID, alert.PatientID)

	owned, err := repo.ListForPatient(ctx, owner.ID)
	require.NoError(t, err)
	found := false
	for _, a := range owned {
		if a.ID == alert.ID {
			found = true
		}
	}
	assert.True(t, found)

	count, err := repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCreateAlertUnknownPatient(t *testing.T) {
	repo := NewAlertRepository(NewStore())

	err := repo.Create(context.Background(), uuid.New(), &model.Alert{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListForPatientUnknownPatient(t *testing.T) {
	repo := NewAlertRepository(NewStore())

	_, err := repo.ListForPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
