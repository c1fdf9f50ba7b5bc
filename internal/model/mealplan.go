package model

import "github.com/google/uuid"

type MealSchedule string

const (
	ScheduleDaily  MealSchedule = "daily"
	ScheduleWeekly MealSchedule = "weekly"
)

// NutritionFacts holds the per-meal nutrition breakdown.
type NutritionFacts struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type Meal struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Nutrition   NutritionFacts `json:"nutritional_info"`
	Image       string         `json:"image,omitempty"`
}

// MealPlan is shared by reference across care plans: the same plan id may
// appear in several care plans' meal lists. The global meal plan set is a
// projection over all care plans; projection entries carry the sourcing
// plan's title in Category.
type MealPlan struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Schedule    MealSchedule `json:"schedule"`
	Meals       []*Meal      `json:"meals"`
	Category    string       `json:"category,omitempty"`
}
