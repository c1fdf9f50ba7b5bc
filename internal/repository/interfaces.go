package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository manages clinician and care team accounts.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

// PatientRepository manages the patient roster.
type PatientRepository interface {
	List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	Create(ctx context.Context, patient *model.Patient) error
	DistinctConditions(ctx context.Context) ([]string, error)
	BiometricHistory(ctx context.Context, patientID uuid.UUID, typ model.BiometricType) ([]*model.BiometricReading, error)
}

// CarePlanRepository manages care plans and the meal plan catalog.
type CarePlanRepository interface {
	List(ctx context.Context, filter *model.CarePlanFilter) ([]*model.CarePlan, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CarePlan, error)
	Create(ctx context.Context, plan *model.CarePlan) error
	ListMealPlans(ctx context.Context) ([]*model.MealPlan, error)
	GetMealPlan(ctx context.Context, id uuid.UUID) (*model.MealPlan, error)
}

// MessageRepository manages conversations and their messages.
type MessageRepository interface {
	ListConversations(ctx context.Context, filter *model.ConversationFilter) ([]*model.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.Message, error)
	Append(ctx context.Context, conversationID uuid.UUID, msg *model.Message) error
}

// AlertRepository manages patient alerts. List results are ordered with
// unread alerts first and newest first within each group.
type AlertRepository interface {
	List(ctx context.Context) ([]*model.Alert, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Alert, error)
	Create(ctx context.Context, patientID uuid.UUID, alert *model.Alert) error
	UnreadCount(ctx context.Context) (int, error)
}

// AnalyticsRepository serves prepared reports and adherence history.
type AnalyticsRepository interface {
	ListReports(ctx context.Context) ([]*model.AnalyticsReport, error)
	AdherenceHistory(ctx context.Context, days int) ([]*model.AdherencePoint, error)
}
