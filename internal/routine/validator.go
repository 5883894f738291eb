package routine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Коды нарушений, которые возвращает Validate.
const (
	MissingName       = "MissingName"
	NoDays            = "NoDays"
	MissingDayName    = "MissingDayName"
	NoExercisesForDay = "NoExercisesForDay"
	InvalidExercise   = "InvalidExercise"
)

// Поля упражнения для InvalidExercise и SetExerciseField.
const (
	FieldName = "name"
	FieldSets = "sets"
	FieldReps = "reps"
	FieldRest = "rest"
)

// Violation - одно нарушение. Day и Exercise равны -1, если
// нарушение к ним не привязано.
type Violation struct {
	Code     string `json:"code"`
	Day      int    `json:"day"`
	Exercise int    `json:"exercise"`
	Field    string `json:"field,omitempty"`
}

func (v Violation) String() string {
	switch v.Code {
	case MissingDayName, NoExercisesForDay:
		return fmt.Sprintf("%s(%d)", v.Code, v.Day)
	case InvalidExercise:
		return fmt.Sprintf("%s(%d, %d, %s)", v.Code, v.Day, v.Exercise, v.Field)
	default:
		return v.Code
	}
}

// Validate проверяет черновик перед отправкой. Собирает все нарушения
// сразу, чтобы форма показала их одним списком. Без ввода-вывода.
func Validate(r *models.Routine) []Violation {
	var out []Violation

	if strings.TrimSpace(r.Name) == "" {
		out = append(out, Violation{Code: MissingName, Day: -1, Exercise: -1})
	}
	if len(r.Days) == 0 {
		out = append(out, Violation{Code: NoDays, Day: -1, Exercise: -1})
	}
	for di, d := range r.Days {
		if strings.TrimSpace(d.Day) == "" {
			out = append(out, Violation{Code: MissingDayName, Day: di, Exercise: -1})
		}
		if len(d.Exercises) == 0 {
			out = append(out, Violation{Code: NoExercisesForDay, Day: di, Exercise: -1})
		}
		for ei, e := range d.Exercises {
			if strings.TrimSpace(e.Name) == "" {
				out = append(out, invalidExercise(di, ei, FieldName))
			}
			if !positiveInt(e.Sets) {
				out = append(out, invalidExercise(di, ei, FieldSets))
			}
			if strings.TrimSpace(e.Reps) == "" {
				out = append(out, invalidExercise(di, ei, FieldReps))
			}
			if strings.TrimSpace(e.Rest) == "" {
				out = append(out, invalidExercise(di, ei, FieldRest))
			}
		}
	}
	return out
}

func invalidExercise(day, exercise int, field string) Violation {
	return Violation{Code: InvalidExercise, Day: day, Exercise: exercise, Field: field}
}

// positiveInt - форма может прислать количество подходов строкой,
// принимаем только положительное целое без потерь
func positiveInt(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n > 0
}
