package routine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Controller связывает стор, валидатор и удаленный сервис. Все
// мутации идут от действий оператора, фонового планировщика нет.
//
// Известное ограничение: на документах нет версии, поэтому при
// одновременной правке одной программы двумя клиентами выигрывает
// последняя запись.
type Controller struct {
	svc   Service
	store *Store

	selected string          // программа, открытая на просмотр
	current  string          // токен активного черновика
	inflight map[string]bool // черновики с запущенной отправкой
}

func NewController(svc Service, store *Store) *Controller {
	return &Controller{
		svc:      svc,
		store:    store,
		inflight: make(map[string]bool),
	}
}

// Store отдает клиентский кэш для чтения списка.
func (c *Controller) Store() *Store {
	return c.store
}

// LoadAll перечитывает список с сервера и заменяет стор целиком.
// При ошибке стор остается прежним.
func (c *Controller) LoadAll(ctx context.Context) error {
	routines, err := c.svc.List(ctx)
	if err != nil {
		return err
	}
	c.store.ReplaceAll(routines)
	return nil
}

// OpenCreate открывает пустой черновик новой программы.
func (c *Controller) OpenCreate() Draft {
	d := Draft{
		Token: uuid.NewString(),
		Routine: models.Routine{
			Goal:       models.GoalGeneral,
			Difficulty: models.DifficultyBeginner,
			Days:       []models.Day{},
		},
	}
	c.current = d.Token
	return d
}

// OpenEdit открывает черновик-копию сохраненной программы. Правки
// черновика не видны в сторе до успешной отправки.
func (c *Controller) OpenEdit(id string) (Draft, error) {
	r, ok := c.store.Get(id)
	if !ok {
		return Draft{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	d := Draft{Token: uuid.NewString(), Routine: *r}
	c.current = d.Token
	return d, nil
}

// CloseDraft закрывает сеанс редактирования, например при уходе со
// страницы. Ответ на отправку закрытого черновика уже не применяется.
func (c *Controller) CloseDraft(d Draft) {
	if c.current == d.Token {
		c.current = ""
	}
}

// Submit валидирует черновик и отправляет его на сервер. Нарушения
// возвращаются списком без обращения к сети. После успешной записи
// список перечитывается целиком - так в сторе оказываются поля,
// присвоенные сервером, без разбора ответа create. Любой провал
// оставляет черновик и стор нетронутыми.
func (c *Controller) Submit(ctx context.Context, d Draft) ([]Violation, error) {
	if violations := Validate(&d.Routine); len(violations) > 0 {
		return violations, nil
	}

	if c.inflight[d.Token] {
		return nil, ErrSubmitInFlight
	}
	c.inflight[d.Token] = true
	defer delete(c.inflight, d.Token)

	var err error
	if d.Routine.ID == "" {
		_, err = c.svc.Create(ctx, &d.Routine)
	} else {
		err = c.svc.Update(ctx, d.Routine.ID, &d.Routine)
	}
	if err != nil {
		return nil, err
	}

	// Черновик закрыли, пока шла отправка - результат не применяем.
	if c.current != d.Token {
		return nil, nil
	}
	c.current = ""
	return nil, c.LoadAll(ctx)
}

// Remove удаляет программу на сервере и убирает ее из стора. Если она
// была открыта на просмотр, выбор сбрасывается.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	c.store.Remove(id)
	if c.selected == id {
		c.selected = ""
	}
	return nil
}

// SelectForView открывает программу в панели просмотра. Просмотр и
// редактирование - независимые части состояния.
func (c *Controller) SelectForView(id string) error {
	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.selected = id
	return nil
}

// Selected возвращает копию программы, открытой на просмотр.
func (c *Controller) Selected() (*models.Routine, bool) {
	if c.selected == "" {
		return nil, false
	}
	return c.store.Get(c.selected)
}
