package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalCompletionRate(t *testing.T) {
	plan := &CarePlan{
		Goals: []*Goal{
			{Status: GoalStatusAchieved},
			{Status: GoalStatusInProgress},
			{Status: GoalStatusPending},
		},
	}
	assert.Equal(t, 33, plan.GoalCompletionRate())
}

func TestGoalCompletionRateNoGoals(t *testing.T) {
	plan := &CarePlan{}
	assert.Equal(t, 0, plan.GoalCompletionRate())
}

func TestGoalCompletionRateAllAchieved(t *testing.T) {
	plan := &CarePlan{
		Goals: []*Goal{
			{Status: GoalStatusAchieved},
			{Status: GoalStatusAchieved},
		},
	}
	assert.Equal(t, 100, plan.GoalCompletionRate())
}

func TestGoalCompletionRateRoundsUp(t *testing.T) {
	plan := &CarePlan{
		Goals: []*Goal{
			{Status: GoalStatusAchieved},
			{Status: GoalStatusAchieved},
			{Status: GoalStatusPending},
		},
	}
	assert.Equal(t, 67, plan.GoalCompletionRate())
}
