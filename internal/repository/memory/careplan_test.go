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

func TestListCarePlansOrderedByUpdatedAtDesc(t *testing.T) {
	repo := NewCarePlanRepository(NewStore())

	plans, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	for i := 1; i < len(plans); i++ {
		assert.False(t, plans[i-1].UpdatedAt.Before(plans[i].UpdatedAt))
	}
	assert.Equal(t, "Weight Management Program", plans[0].Title)
}

func TestListCarePlansSearchMatchesTitleOrDescription(t *testing.T) {
	repo := NewCarePlanRepository(NewStore())
	ctx := context.Background()

	byTitle, err := repo.List(ctx, &model.CarePlanFilter{Search: "diabetes"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Diabetes Management Plan", byTitle[0].Title)

	byDescription, err := repo.List(ctx, &model.CarePlanFilter{Search: "cardiovascular"})
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Heart Health Improvement", byDescription[0].Title)
}

func TestListCarePlansFilterByStatusAndPatient(t *testing.T) {
	store := NewStore()
	repo := NewCarePlanRepository(store)
	ctx := context.Background()

	active, err := repo.List(ctx, &model.CarePlanFilter{Status: string(model.CarePlanStatusActive)})
	require.NoError(t, err)
	assert.Len(t, active, 3)

	drafts, err := repo.List(ctx, &model.CarePlanFilter{Status: string(model.CarePlanStatusDraft)})
	require.NoError(t, err)
	assert.Empty(t, drafts)

	all, err := repo.List(ctx, &model.CarePlanFilter{Status: model.FilterAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	patientID := active[0].PatientID
	forPatient, err := repo.List(ctx, &model.CarePlanFilter{PatientID: patientID.String()})
	require.NoError(t, err)
	require.Len(t, forPatient, 1)
	assert.Equal(t, patientID, forPatient[0].PatientID)
}

func TestCreateCarePlanSortsFirst(t *testing.T) {
	repo := NewCarePlanRepository(NewStore())
	ctx := context.Background()

	plan := &model.CarePlan{
		ID:        uuid.New(),
		Title:     "New Plan",
		Status:    model.CarePlanStatusDraft,
		UpdatedAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, plan))

	plans, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, plans, 4)
	assert.Equal(t, "New Plan", plans[0].Title)
}

func TestMealPlanProjectionCarriesSourcePlanTitle(t *testing.T) {
	repo := NewCarePlanRepository(NewStore())
	ctx := context.Background()

	mealPlans, err := repo.ListMealPlans(ctx)
	require.NoError(t, err)
	require.Len(t, mealPlans, 3)

	categories := make(map[string]string)
	for _, mp := range mealPlans {
		categories[mp.Name] = mp.Category
	}
	assert.Equal(t, "Diabetes Management Plan", categories["Low-Carb Mediterranean Plan"])
	assert.Equal(t, "Heart Health Improvement", categories["Heart-Healthy DASH Diet"])
	assert.Equal(t, "Weight Management Program", categories["Calorie-Controlled Plan"])
}

func TestMealPlanSharedAcrossPlansAppearsOncePerReference(t *testing.T) {
	repo := NewCarePlanRepository(NewStore())
	ctx := context.Background()

	plans, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	source := plans[0]
	require.NotEmpty(t, source.MealPlans)
	shared := source.MealPlans[0]

	require.NoError(t, repo.Create(ctx, &model.CarePlan{
		ID:        uuid.New(),
		Title:     "Maintenance Program",
		Status:    model.CarePlanStatusDraft,
		UpdatedAt: time.Now().UTC(),
		MealPlans: []*model.MealPlan{shared},
	}))

	mealPlans, err := repo.ListMealPlans(ctx)
	require.NoError(t, err)
	require.Len(t, mealPlans, 4)

	var categories []string
	for _, mp := range mealPlans {
		if mp.ID == shared.ID {
			categories = append(categories, mp.Category)
		}
	}
	assert.ElementsMatch(t, []string{source.Title, "Maintenance Program"}, categories)
}

func TestGetMealPlan(t *testing.T) {
	repo := NewCarePlanRepository(NewStore())
	ctx := context.Background()

	mealPlans, err := repo.ListMealPlans(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, mealPlans)

	got, err := repo.GetMealPlan(ctx, mealPlans[0].ID)
	require.NoError(t, err)
	assert.Equal(t, mealPlans[0].Name, got.Name)

	_, err = repo.GetMealPlan(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
