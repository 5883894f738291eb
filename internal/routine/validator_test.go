package routine

import (
	"testing"

	"github.com/priyanshu461/gym-backoffice/internal/models"
	"github.com/stretchr/testify/assert"
)

func pushDayRoutine() *models.Routine {
	return &models.Routine{
		Name:       "Push Day",
		Goal:       models.GoalStrength,
		Difficulty: models.DifficultyBeginner,
		Days: []models.Day{
			{
				Day: "Monday",
				Exercises: []models.Exercise{
					{Name: "Bench Press", Sets: "3", Reps: "8-10", Rest: "90s"},
				},
			},
		},
	}
}

func codes(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func TestValidateValidRoutine(t *testing.T) {
	assert.Empty(t, Validate(pushDayRoutine()))
}

func TestValidateEmptyDraft(t *testing.T) {
	r := &models.Routine{Name: "", Days: []models.Day{}}

	violations := Validate(r)
	assert.Equal(t, []string{MissingName, NoDays}, codes(violations))
}

func TestValidateBlankNameIsMissing(t *testing.T) {
	r := pushDayRoutine()
	r.Name = "   "

	assert.Contains(t, codes(Validate(r)), MissingName)
}

func TestValidateDayViolations(t *testing.T) {
	r := pushDayRoutine()
	r.Days = append(r.Days, models.Day{Day: "  ", Exercises: []models.Exercise{}})

	violations := Validate(r)
	assert.Contains(t, violations, Violation{Code: MissingDayName, Day: 1, Exercise: -1})
	assert.Contains(t, violations, Violation{Code: NoExercisesForDay, Day: 1, Exercise: -1})
}

func TestValidateExerciseFields(t *testing.T) {
	r := pushDayRoutine()
	r.Days[0].Exercises[0] = models.Exercise{Name: " ", Sets: "0", Reps: "", Rest: ""}

	violations := Validate(r)
	assert.Len(t, violations, 4)
	for _, field := range []string{FieldName, FieldSets, FieldReps, FieldRest} {
		assert.Contains(t, violations, Violation{Code: InvalidExercise, Day: 0, Exercise: 0, Field: field})
	}
}

func TestValidateSetsMustBePositiveInteger(t *testing.T) {
	for _, bad := range []string{"", "-1", "0", "3.5", "abc", "2x"} {
		r := pushDayRoutine()
		r.Days[0].Exercises[0].Sets = bad
		assert.Contains(t, codes(Validate(r)), InvalidExercise, "sets=%q", bad)
	}

	r := pushDayRoutine()
	r.Days[0].Exercises[0].Sets = " 4 "
	assert.Empty(t, Validate(r))
}

func TestValidateIsDeterministic(t *testing.T) {
	r := &models.Routine{Days: []models.Day{{Day: "", Exercises: nil}}}
	assert.Equal(t, Validate(r), Validate(r))
}
