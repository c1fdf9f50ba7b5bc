package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifechef-health/careportal-api/internal/model"
)

func TestTrackerLifecycle(t *testing.T) {
	tracker := NewTracker()

	assert.Equal(t, State{}, tracker.Snapshot())

	tracker.Start()
	state := tracker.Snapshot()
	assert.True(t, state.IsLoading)
	assert.Empty(t, state.Error)

	tracker.Fail("x")
	state = tracker.Snapshot()
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "x", state.Error)
	assert.Nil(t, state.User)

	tracker.Reset()
	assert.Equal(t, State{}, tracker.Snapshot())
}

func TestTrackerStartClearsError(t *testing.T) {
	tracker := NewTracker()
	tracker.Fail("invalid email or password")

	tracker.Start()
	state := tracker.Snapshot()
	assert.True(t, state.IsLoading)
	assert.Empty(t, state.Error)
}

func TestTrackerSucceed(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()

	user := &model.User{Name: "Dr. Sarah Johnson"}
	tracker.Succeed(user)

	state := tracker.Snapshot()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	assert.Same(t, user, state.User)
}

func TestTrackerAbortOnlyClearsLoading(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()

	tracker.Abort()
	state := tracker.Snapshot()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Error)
}
