package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type CarePlanStatus string

const (
	CarePlanStatusDraft     CarePlanStatus = "draft"
	CarePlanStatusActive    CarePlanStatus = "active"
	CarePlanStatusCompleted CarePlanStatus = "completed"
)

type GoalStatus string

const (
	GoalStatusPending    GoalStatus = "pending"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusAchieved   GoalStatus = "achieved"
)

// Goal is owned exclusively by one care plan.
type Goal struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	TargetDate  time.Time  `json:"target_date"`
	Status      GoalStatus `json:"status"`
}

// CarePlan bundles goals and meal plans for one patient. Status is fixed
// at creation; there is no transition operation.
type CarePlan struct {
	ID          uuid.UUID      `json:"id"`
	PatientID   uuid.UUID      `json:"patient_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Status      CarePlanStatus `json:"status"`
	Goals       []*Goal        `json:"goals"`
	MealPlans   []*MealPlan    `json:"meal_plans"`
	CreatedBy   uuid.UUID      `json:"created_by"`
}

// GoalCompletionRate returns the achieved share of the plan's goals as a
// rounded integer percent. A plan with no goals completes at 0, not NaN.
func (p *CarePlan) GoalCompletionRate() int {
	if len(p.Goals) == 0 {
		return 0
	}
	achieved := 0
	for _, g := range p.Goals {
		if g.Status == GoalStatusAchieved {
			achieved++
		}
	}
	return int(math.Round(float64(achieved) / float64(len(p.Goals)) * 100))
}

// CarePlanFilter represents care plan list parameters. Search matches
// title OR description; status and patient narrow when not "all". Results
// are always ordered by updated_at descending; unlike the patient list,
// the sort is not selectable.
type CarePlanFilter struct {
	Search    string `json:"search" form:"search"`
	Status    string `json:"status" form:"status" binding:"omitempty,oneof=all draft active completed"`
	PatientID string `json:"patient" form:"patient"`
}

// GoalInput represents one goal on a care plan creation request.
type GoalInput struct {
	Description string    `json:"description" binding:"required"`
	TargetDate  time.Time `json:"target_date"`
}

// MealPlanSelection picks a meal plan and the subset of its meals to carry
// into the new care plan. Empty MealIDs selects every meal of the plan.
type MealPlanSelection struct {
	MealPlanID string   `json:"meal_plan_id" binding:"required,uuid"`
	MealIDs    []string `json:"meal_ids" binding:"omitempty,dive,uuid"`
}

// CreateCarePlanRequest represents care plan creation parameters.
type CreateCarePlanRequest struct {
	PatientID   string              `json:"patient_id" binding:"required,uuid"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	Goals       []GoalInput         `json:"goals" binding:"omitempty,dive"`
	MealPlans   []MealPlanSelection `json:"meal_plans" binding:"omitempty,dive"`
}
