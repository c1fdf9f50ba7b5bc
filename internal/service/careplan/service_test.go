package careplan

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, uuid.UUID, *model.MealPlan) {
	t.Helper()
	store := memory.NewStore()
	patients := memory.NewPatientRepository(store)
	svc := NewService(memory.NewCarePlanRepository(store), patients)

	roster, err := patients.List(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, roster)

	mealPlans, err := svc.MealPlans(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, mealPlans)

	return svc, roster[0].ID, mealPlans[0]
}

func TestCreateCarePlanStartsAsDraft(t *testing.T) {
	svc, patientID, _ := newTestService(t)

	plan, err := svc.Create(context.Background(), &model.CreateCarePlanRequest{
		PatientID: patientID.String(),
		Title:     "Renal Diet Plan",
		Goals: []model.GoalInput{
			{Description: "Reduce sodium intake"},
		},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, model.CarePlanStatusDraft, plan.Status)
	require.Len(t, plan.Goals, 1)
	assert.Equal(t, model.GoalStatusPending, plan.Goals[0].Status)
	assert.False(t, plan.CreatedAt.IsZero())
	assert.Equal(t, plan.CreatedAt, plan.UpdatedAt)
}

func TestCreateCarePlanUnknownPatient(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &model.CreateCarePlanRequest{
		PatientID: uuid.New().String(),
		Title:     "Orphan Plan",
	}, uuid.New())
	assert.Error(t, err)
}

func TestCreateCarePlanEmptySelectionTakesAllMeals(t *testing.T) {
	svc, patientID, source := newTestService(t)

	plan, err := svc.Create(context.Background(), &model.CreateCarePlanRequest{
		PatientID: patientID.String(),
		Title:     "Full Menu Plan",
		MealPlans: []model.MealPlanSelection{
			{MealPlanID: source.ID.String()},
		},
	}, uuid.New())
	require.NoError(t, err)

	require.Len(t, plan.MealPlans, 1)
	assert.Equal(t, source.ID, plan.MealPlans[0].ID)
	assert.Len(t, plan.MealPlans[0].Meals, len(source.Meals))
}

func TestCreateCarePlanSubsetSelection(t *testing.T) {
	svc, patientID, source := newTestService(t)
	require.NotEmpty(t, source.Meals)

	plan, err := svc.Create(context.Background(), &model.CreateCarePlanRequest{
		PatientID: patientID.String(),
		Title:     "Single Meal Plan",
		MealPlans: []model.MealPlanSelection{
			{
				MealPlanID: source.ID.String(),
				MealIDs:    []string{source.Meals[0].ID.String()},
			},
		},
	}, uuid.New())
	require.NoError(t, err)

	require.Len(t, plan.MealPlans, 1)
	require.Len(t, plan.MealPlans[0].Meals, 1)
	assert.Equal(t, source.Meals[0].ID, plan.MealPlans[0].Meals[0].ID)
}

func TestCreateCarePlanRejectsForeignMeal(t *testing.T) {
	svc, patientID, source := newTestService(t)

	_, err := svc.Create(context.Background(), &model.CreateCarePlanRequest{
		PatientID: patientID.String(),
		Title:     "Mismatched Plan",
		MealPlans: []model.MealPlanSelection{
			{
				MealPlanID: source.ID.String(),
				MealIDs:    []string{uuid.New().String()},
			},
		},
	}, uuid.New())
	assert.Error(t, err)
}
