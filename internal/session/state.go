// Package session tracks the sign-in lifecycle state exposed to clients.
package session

import (
	"sync"

	"github.com/lifechef-health/careportal-api/internal/model"
)

// State is the authentication state visible at GET /auth/session.
type State struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"is_authenticated"`
	IsLoading       bool        `json:"is_loading"`
	Error           string      `json:"error,omitempty"`
}

// Tracker holds the current session state and applies lifecycle
// transitions atomically.
type Tracker struct {
	mu    sync.Mutex
	state State
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Start marks a login attempt in flight. The previous error is cleared;
// an already authenticated user stays visible until the attempt resolves.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.IsLoading = true
	t.state.Error = ""
}

// Succeed records a completed sign-in.
func (t *Tracker) Succeed(user *model.User) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = State{
		User:            user,
		IsAuthenticated: true,
	}
}

// Fail records a rejected sign-in attempt.
func (t *Tracker) Fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = State{Error: message}
}

// Abort cancels an in-flight attempt without recording an error.
func (t *Tracker) Abort() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.IsLoading = false
}

// Reset returns the tracker to the signed-out initial state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = State{}
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
