package routine

import (
	"fmt"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Draft - черновик программы. Каждая операция редактирования
// возвращает новый снимок, исходный черновик не трогается - так
// черновик никогда не делит память со стором. Token идентифицирует
// сеанс редактирования (см. Controller.Submit).
type Draft struct {
	Token   string
	Routine models.Routine
}

// SetName / SetGoal / SetDifficulty / SetAssignedMember - правки
// полей верхнего уровня.

func (d Draft) SetName(name string) Draft {
	nd := d.clone()
	nd.Routine.Name = name
	return nd
}

func (d Draft) SetGoal(goal string) Draft {
	nd := d.clone()
	nd.Routine.Goal = goal
	return nd
}

func (d Draft) SetDifficulty(difficulty string) Draft {
	nd := d.clone()
	nd.Routine.Difficulty = difficulty
	return nd
}

func (d Draft) SetAssignedMember(memberID string) Draft {
	nd := d.clone()
	nd.Routine.AssignedMemberID = memberID
	return nd
}

// AddDay добавляет день с меткой-заглушкой и пустым списком упражнений.
func (d Draft) AddDay() Draft {
	nd := d.clone()
	nd.Routine.Days = append(nd.Routine.Days, models.Day{
		Day:       fmt.Sprintf("Day %d", len(nd.Routine.Days)+1),
		Exercises: []models.Exercise{},
	})
	return nd
}

// SetDayLabel переименовывает день.
func (d Draft) SetDayLabel(dayIndex int, label string) (Draft, error) {
	if err := d.checkDay(dayIndex); err != nil {
		return Draft{}, err
	}
	nd := d.clone()
	nd.Routine.Days[dayIndex].Day = label
	return nd, nil
}

// AddExercise добавляет пустое упражнение в конец дня.
func (d Draft) AddExercise(dayIndex int) (Draft, error) {
	if err := d.checkDay(dayIndex); err != nil {
		return Draft{}, err
	}
	nd := d.clone()
	day := &nd.Routine.Days[dayIndex]
	day.Exercises = append(day.Exercises, models.Exercise{})
	return nd, nil
}

// SetExerciseField правит одно поле упражнения. field - одна из
// констант FieldName, FieldSets, FieldReps, FieldRest.
func (d Draft) SetExerciseField(dayIndex, exerciseIndex int, field, value string) (Draft, error) {
	if err := d.checkExercise(dayIndex, exerciseIndex); err != nil {
		return Draft{}, err
	}
	nd := d.clone()
	e := &nd.Routine.Days[dayIndex].Exercises[exerciseIndex]
	switch field {
	case FieldName:
		e.Name = value
	case FieldSets:
		e.Sets = value
	case FieldReps:
		e.Reps = value
	case FieldRest:
		e.Rest = value
	default:
		return Draft{}, fmt.Errorf("неизвестное поле упражнения %q", field)
	}
	return nd, nil
}

// RemoveDay удаляет день по позиции. Дни после удаленного сдвигаются
// на единицу вниз, остальные не переставляются.
func (d Draft) RemoveDay(dayIndex int) (Draft, error) {
	if err := d.checkDay(dayIndex); err != nil {
		return Draft{}, err
	}
	nd := d.clone()
	days := nd.Routine.Days
	nd.Routine.Days = append(days[:dayIndex], days[dayIndex+1:]...)
	return nd, nil
}

// RemoveExercise удаляет упражнение по позиции внутри дня.
func (d Draft) RemoveExercise(dayIndex, exerciseIndex int) (Draft, error) {
	if err := d.checkExercise(dayIndex, exerciseIndex); err != nil {
		return Draft{}, err
	}
	nd := d.clone()
	day := &nd.Routine.Days[dayIndex]
	day.Exercises = append(day.Exercises[:exerciseIndex], day.Exercises[exerciseIndex+1:]...)
	return nd, nil
}

func (d Draft) clone() Draft {
	return Draft{Token: d.Token, Routine: *d.Routine.Clone()}
}

func (d Draft) checkDay(dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(d.Routine.Days) {
		return fmt.Errorf("день %d: %w", dayIndex, ErrIndexOutOfRange)
	}
	return nil
}

func (d Draft) checkExercise(dayIndex, exerciseIndex int) error {
	if err := d.checkDay(dayIndex); err != nil {
		return err
	}
	if exerciseIndex < 0 || exerciseIndex >= len(d.Routine.Days[dayIndex].Exercises) {
		return fmt.Errorf("упражнение %d: %w", exerciseIndex, ErrIndexOutOfRange)
	}
	return nil
}
