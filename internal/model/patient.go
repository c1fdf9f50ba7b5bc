package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient sort fields
const (
	PatientSortName      = "name"
	PatientSortAdherence = "adherence_rate"
)

// Patient represents an enrolled program participant. A patient owns its
// alerts and biometric readings; the care team holds weak user references.
type Patient struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Age           int                 `json:"age"`
	Gender        string              `json:"gender"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Conditions    []string            `json:"conditions"`
	Avatar        string              `json:"avatar,omitempty"`
	AdherenceRate int                 `json:"adherence_rate"`
	LastActivity  time.Time           `json:"last_activity"`
	Alerts        []*Alert            `json:"alerts"`
	Biometrics    []*BiometricReading `json:"biometrics"`
	CareTeam      []uuid.UUID         `json:"care_team"`
}

// HasCondition reports whether the condition label appears in the
// patient's condition list.
func (p *Patient) HasCondition(condition string) bool {
	for _, c := range p.Conditions {
		if c == condition {
			return true
		}
	}
	return false
}

// PatientFilter represents patient list parameters. Search and Condition
// combine with AND. Sort field and direction are independent.
type PatientFilter struct {
	Search    string `json:"search" form:"search"`
	Condition string `json:"condition" form:"condition"`
	SortField string `json:"sort_field" form:"sort_field" binding:"omitempty,oneof=name adherence_rate"`
	SortDir   string `json:"sort_dir" form:"sort_dir" binding:"omitempty,oneof=asc desc"`
}

// CreatePatientRequest represents patient enrollment parameters. Adherence
// defaults to 100 when omitted.
type CreatePatientRequest struct {
	Name          string   `json:"name" binding:"required"`
	Age           int      `json:"age" binding:"required,gt=0"`
	Gender        string   `json:"gender" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone"`
	Conditions    []string `json:"conditions"`
	Avatar        string   `json:"avatar"`
	AdherenceRate *int     `json:"adherence_rate" binding:"omitempty,adherence"`
}
