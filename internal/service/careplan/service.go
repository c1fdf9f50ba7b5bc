package careplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
	apperrors "github.com/lifechef-health/careportal-api/pkg/errors"
)

type CarePlanService interface {
	List(ctx context.Context, filter *model.CarePlanFilter) ([]*model.CarePlan, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CarePlan, error)
	Create(ctx context.Context, req *model.CreateCarePlanRequest, createdBy uuid.UUID) (*model.CarePlan, error)
	MealPlans(ctx context.Context) ([]*model.MealPlan, error)
	MealPlan(ctx context.Context, id uuid.UUID) (*model.MealPlan, error)
}

type Service struct {
	repo     repository.CarePlanRepository
	patients repository.PatientRepository
}

func NewService(repo repository.CarePlanRepository, patients repository.PatientRepository) *Service {
	return &Service{repo: repo, patients: patients}
}

func (s *Service) List(ctx context.Context, filter *model.CarePlanFilter) ([]*model.CarePlan, error) {
	plans, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list care plans: %w", err)
	}
	return plans, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.CarePlan, error) {
	plan, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("care plan", err)
		}
		return nil, fmt.Errorf("failed to get care plan: %w", err)
	}
	return plan, nil
}

// Create builds a draft care plan for an existing patient. Requested
// goals start pending; meal plan selections are resolved against the
// catalog, carrying either the chosen meals or the plan's full set.
func (s *Service) Create(ctx context.Context, req *model.CreateCarePlanRequest, createdBy uuid.UUID) (*model.CarePlan, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid patient id", err)
	}
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}

	mealPlans, err := s.resolveMealPlans(ctx, req.MealPlans)
	if err != nil {
		return nil, err
	}

	goals := make([]*model.Goal, 0, len(req.Goals))
	for _, g := range req.Goals {
		goals = append(goals, &model.Goal{
			ID:          uuid.New(),
			Description: g.Description,
			TargetDate:  g.TargetDate,
			Status:      model.GoalStatusPending,
		})
	}

	now := time.Now().UTC()
	plan := &model.CarePlan{
		ID:          uuid.New(),
		PatientID:   patientID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      model.CarePlanStatusDraft,
		Goals:       goals,
		MealPlans:   mealPlans,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create care plan: %w", err)
	}
	return plan, nil
}

func (s *Service) resolveMealPlans(ctx context.Context, selections []model.MealPlanSelection) ([]*model.MealPlan, error) {
	mealPlans := make([]*model.MealPlan, 0, len(selections))
	for _, sel := range selections {
		mealPlanID, err := uuid.Parse(sel.MealPlanID)
		if err != nil {
			return nil, apperrors.BadRequest("invalid meal plan id", err)
		}
		source, err := s.repo.GetMealPlan(ctx, mealPlanID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.NotFound("meal plan", err)
			}
			return nil, fmt.Errorf("failed to resolve meal plan: %w", err)
		}

		plan := *source
		plan.Category = ""
		if len(sel.MealIDs) > 0 {
			wanted := make(map[uuid.UUID]struct{}, len(sel.MealIDs))
			for _, raw := range sel.MealIDs {
				mealID, err := uuid.Parse(raw)
				if err != nil {
					return nil, apperrors.BadRequest("invalid meal id", err)
				}
				wanted[mealID] = struct{}{}
			}
			meals := make([]*model.Meal, 0, len(wanted))
			for _, meal := range source.Meals {
				if _, ok := wanted[meal.ID]; ok {
					meals = append(meals, meal)
				}
			}
			if len(meals) != len(wanted) {
				return nil, apperrors.BadRequest("meal selection does not match meal plan", nil)
			}
			plan.Meals = meals
		}
		mealPlans = append(mealPlans, &plan)
	}
	return mealPlans, nil
}

func (s *Service) MealPlans(ctx context.Context) ([]*model.MealPlan, error) {
	plans, err := s.repo.ListMealPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	return plans, nil
}

func (s *Service) MealPlan(ctx context.Context, id uuid.UUID) (*model.MealPlan, error) {
	plan, err := s.repo.GetMealPlan(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("meal plan", err)
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return plan, nil
}
