package plan

import (
	"testing"

	"github.com/priyanshu461/gym-backoffice/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSuggestVariesByGoal(t *testing.T) {
	strength := Suggest(models.GoalStrength, models.DifficultyBeginner)
	muscle := Suggest(models.GoalMuscle, models.DifficultyBeginner)
	general := Suggest(models.GoalGeneral, models.DifficultyBeginner)

	assert.NotEmpty(t, strength)
	assert.NotEqual(t, strength, muscle)
	assert.NotEqual(t, muscle, general)
}

func TestGoalForCategory(t *testing.T) {
	assert.Equal(t, models.GoalMuscle, GoalForCategory(Underweight))
	assert.Equal(t, models.GoalStrength, GoalForCategory(Normal))
	assert.Equal(t, models.GoalGeneral, GoalForCategory(Overweight))
	assert.Equal(t, models.GoalGeneral, GoalForCategory(Obese))
}

func TestSuggestVariesByDifficulty(t *testing.T) {
	beginner := Suggest(models.GoalStrength, models.DifficultyBeginner)
	advanced := Suggest(models.GoalStrength, models.DifficultyAdvanced)

	assert.NotEqual(t, beginner, advanced)
}
