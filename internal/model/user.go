package model

import "github.com/google/uuid"

// User role constants
const (
	RoleClinician = "clinician"
	RoleCareTeam  = "care_team"
	RoleAdmin     = "admin"
)

// User represents a portal user: a clinician, care-team member or admin.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
}
