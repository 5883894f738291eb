package routine

import (
	"context"
	"fmt"
	"testing"

	"github.com/priyanshu461/gym-backoffice/internal/models"
	"github.com/stretchr/testify/assert"
)

// fakeService - сервис в памяти с переключателями отказов.
type fakeService struct {
	routines []*models.Routine
	nextID   int

	failList, failCreate, failUpdate, failDelete bool

	listCalls, createCalls, updateCalls, deleteCalls int
}

func (f *fakeService) List(ctx context.Context) ([]*models.Routine, error) {
	f.listCalls++
	if f.failList {
		return nil, &ServiceError{Op: "list", Status: 500, Message: "boom"}
	}
	out := make([]*models.Routine, len(f.routines))
	for i, r := range f.routines {
		out[i] = r.Clone()
	}
	return out, nil
}

func (f *fakeService) Create(ctx context.Context, r *models.Routine) (string, error) {
	f.createCalls++
	if f.failCreate {
		return "", &ServiceError{Op: "create", Status: 500, Message: "boom"}
	}
	f.nextID++
	cp := r.Clone()
	cp.ID = fmt.Sprintf("id-%d", f.nextID)
	f.routines = append(f.routines, cp)
	return cp.ID, nil
}

func (f *fakeService) Update(ctx context.Context, id string, r *models.Routine) error {
	f.updateCalls++
	if f.failUpdate {
		return &ServiceError{Op: "update", Status: 500, Message: "boom"}
	}
	for i, existing := range f.routines {
		if existing.ID == id {
			cp := r.Clone()
			cp.ID = id
			f.routines[i] = cp
			return nil
		}
	}
	return &ServiceError{Op: "update", Status: 404, Message: "не найдено"}
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	if f.failDelete {
		return &ServiceError{Op: "delete", Status: 500, Message: "boom"}
	}
	for i, existing := range f.routines {
		if existing.ID == id {
			f.routines = append(f.routines[:i], f.routines[i+1:]...)
			return nil
		}
	}
	return &ServiceError{Op: "delete", Status: 404, Message: "не найдено"}
}

func seededController(routines ...*models.Routine) (*Controller, *fakeService) {
	svc := &fakeService{routines: routines}
	return NewController(svc, NewStore()), svc
}

func TestCreateFlow(t *testing.T) {
	ctrl, svc := seededController()
	ctx := context.Background()

	d := ctrl.OpenCreate()
	assert.Equal(t, models.GoalGeneral, d.Routine.Goal)
	assert.Equal(t, models.DifficultyBeginner, d.Routine.Difficulty)
	assert.Empty(t, d.Routine.Days)

	d = d.SetName("Push Day").SetGoal(models.GoalStrength)
	d = d.AddDay()
	d, err := d.SetDayLabel(0, "Monday")
	assert.NoError(t, err)
	d, err = d.AddExercise(0)
	assert.NoError(t, err)
	for field, value := range map[string]string{
		FieldName: "Bench Press", FieldSets: "3", FieldReps: "8-10", FieldRest: "90s",
	} {
		d, err = d.SetExerciseField(0, 0, field, value)
		assert.NoError(t, err)
	}

	violations, err := ctrl.Submit(ctx, d)
	assert.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, 1, svc.createCalls)

	list := ctrl.Store().List()
	assert.Len(t, list, 1)
	assert.Equal(t, "Push Day", list[0].Name)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, "Monday", list[0].Days[0].Day)
	assert.Equal(t, "Bench Press", list[0].Days[0].Exercises[0].Name)
}

func TestSubmitInvalidDraftDoesNoIO(t *testing.T) {
	ctrl, svc := seededController()

	d := ctrl.OpenCreate() // имя пустое, дней нет
	violations, err := ctrl.Submit(context.Background(), d)

	assert.NoError(t, err)
	assert.Equal(t, []string{MissingName, NoDays}, codes(violations))
	assert.Zero(t, svc.createCalls)
	assert.Zero(t, svc.updateCalls)
	assert.Zero(t, ctrl.Store().Len())
}

func TestUpdateFailureLeavesStoreIntact(t *testing.T) {
	ctrl, svc := seededController(storedRoutine("a", "Push Day"))
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))
	before := ctrl.Store().List()

	d, err := ctrl.OpenEdit("a")
	assert.NoError(t, err)
	d = d.SetName("Renamed")

	svc.failUpdate = true
	violations, err := ctrl.Submit(ctx, d)
	assert.Error(t, err)
	assert.Empty(t, violations)

	var serviceErr *ServiceError
	assert.ErrorAs(t, err, &serviceErr)

	assert.Equal(t, before, ctrl.Store().List())
	// черновик сохранен для повторной правки
	assert.Equal(t, "Renamed", d.Routine.Name)
}

func TestLoadAllIsIdempotent(t *testing.T) {
	ctrl, _ := seededController(storedRoutine("a", "First"), storedRoutine("b", "Second"))
	ctx := context.Background()

	assert.NoError(t, ctrl.LoadAll(ctx))
	first := ctrl.Store().List()
	assert.NoError(t, ctrl.LoadAll(ctx))
	second := ctrl.Store().List()

	assert.Equal(t, first, second)
}

func TestLoadAllFailureKeepsPriorState(t *testing.T) {
	ctrl, svc := seededController(storedRoutine("a", "First"))
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))

	svc.failList = true
	assert.Error(t, ctrl.LoadAll(ctx))
	assert.Equal(t, 1, ctrl.Store().Len())
}

func TestEditDraftDoesNotTouchStoreUntilSubmit(t *testing.T) {
	ctrl, _ := seededController(storedRoutine("a", "Push Day"))
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))

	d, err := ctrl.OpenEdit("a")
	assert.NoError(t, err)
	d = d.SetName("Renamed")
	_, err = d.SetExerciseField(0, 0, FieldName, "Changed")
	assert.NoError(t, err)

	stored, _ := ctrl.Store().Get("a")
	assert.Equal(t, "Push Day", stored.Name)
	assert.Equal(t, "Bench Press", stored.Days[0].Exercises[0].Name)
}

func TestUpdateFlow(t *testing.T) {
	ctrl, svc := seededController(storedRoutine("a", "Push Day"))
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))

	d, err := ctrl.OpenEdit("a")
	assert.NoError(t, err)
	d = d.SetName("Pull Day")

	violations, err := ctrl.Submit(ctx, d)
	assert.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, 1, svc.updateCalls)
	assert.Zero(t, svc.createCalls)

	stored, _ := ctrl.Store().Get("a")
	assert.Equal(t, "Pull Day", stored.Name)
}

func TestRemoveClearsSelection(t *testing.T) {
	ctrl, svc := seededController(storedRoutine("a", "First"), storedRoutine("b", "Second"))
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))

	assert.NoError(t, ctrl.SelectForView("a"))
	assert.NoError(t, ctrl.Remove(ctx, "a"))

	assert.Equal(t, 1, svc.deleteCalls)
	assert.Equal(t, 1, ctrl.Store().Len())
	_, ok := ctrl.Selected()
	assert.False(t, ok)

	// удаление другой программы выбор не трогает
	assert.NoError(t, ctrl.SelectForView("b"))
	svc.routines = append(svc.routines, storedRoutine("c", "Third"))
	assert.NoError(t, ctrl.LoadAll(ctx))
	assert.NoError(t, ctrl.Remove(ctx, "c"))
	sel, ok := ctrl.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Second", sel.Name)
}

func TestRemoveFailureKeepsStore(t *testing.T) {
	ctrl, svc := seededController(storedRoutine("a", "First"))
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))

	svc.failDelete = true
	assert.Error(t, ctrl.Remove(ctx, "a"))
	assert.Equal(t, 1, ctrl.Store().Len())
}

func TestClosedDraftResponseIsNotApplied(t *testing.T) {
	ctrl, svc := seededController()
	ctx := context.Background()
	assert.NoError(t, ctrl.LoadAll(ctx))

	d := ctrl.OpenCreate()
	d = d.SetName("Push Day")
	d = d.AddDay()
	d, _ = d.SetDayLabel(0, "Monday")
	d, _ = d.AddExercise(0)
	d, _ = d.SetExerciseField(0, 0, FieldName, "Bench Press")
	d, _ = d.SetExerciseField(0, 0, FieldSets, "3")
	d, _ = d.SetExerciseField(0, 0, FieldReps, "8-10")
	d, _ = d.SetExerciseField(0, 0, FieldRest, "90s")

	// оператор ушел со страницы до ответа сервера
	ctrl.CloseDraft(d)

	listCallsBefore := svc.listCalls
	violations, err := ctrl.Submit(ctx, d)
	assert.NoError(t, err)
	assert.Empty(t, violations)

	// запись на сервере произошла, но закрытый черновик стор не обновляет
	assert.Equal(t, 1, svc.createCalls)
	assert.Equal(t, listCallsBefore, svc.listCalls)
	assert.Zero(t, ctrl.Store().Len())
}

func TestSecondSubmitWhileInFlightIsRejected(t *testing.T) {
	ctrl, _ := seededController()
	d := ctrl.OpenCreate()

	ctrl.inflight[d.Token] = true
	d = d.SetName("Push Day")
	d = d.AddDay()
	d, _ = d.SetDayLabel(0, "Monday")
	d, _ = d.AddExercise(0)
	d, _ = d.SetExerciseField(0, 0, FieldName, "Bench Press")
	d, _ = d.SetExerciseField(0, 0, FieldSets, "3")
	d, _ = d.SetExerciseField(0, 0, FieldReps, "8-10")
	d, _ = d.SetExerciseField(0, 0, FieldRest, "90s")

	_, err := ctrl.Submit(context.Background(), d)
	assert.ErrorIs(t, err, ErrSubmitInFlight)
}

func TestOpenEditUnknownID(t *testing.T) {
	ctrl, _ := seededController()
	_, err := ctrl.OpenEdit("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, ctrl.SelectForView("missing"), ErrNotFound)
}
