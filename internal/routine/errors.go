package routine

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange - операция редактирования сослалась на
	// несуществующий день или упражнение
	ErrIndexOutOfRange = errors.New("позиция вне диапазона")

	// ErrSubmitInFlight - по этому черновику уже идет отправка
	ErrSubmitInFlight = errors.New("отправка черновика уже выполняется")

	// ErrNotFound - программы с таким ID нет в сторе
	ErrNotFound = errors.New("программа не найдена")
)

// ServiceError - ошибка удаленного сервиса. Status == 0 означает
// сетевую ошибку (до сервера не дошли), иначе это отказ сервера.
type ServiceError struct {
	Op      string // list, create, update, delete
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routine %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("routine %s: сервер вернул %d: %s", e.Op, e.Status, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
