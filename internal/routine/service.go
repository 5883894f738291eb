package routine

import (
	"context"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Service - граница с удаленным хранилищем программ. Четыре операции,
// ровно как у REST-бэкенда. Для ядра любой провал - это "отправка не
// удалась, черновик сохранен", различие сетевой ошибки и отказа
// сервера несет ServiceError.
type Service interface {
	List(ctx context.Context) ([]*models.Routine, error)
	// Create возвращает присвоенный сервером ID. Больше из ответа
	// ничего не берем - полное состояние перечитывается через List.
	Create(ctx context.Context, r *models.Routine) (string, error)
	// Update - полная замена документа, не патч.
	Update(ctx context.Context, id string, r *models.Routine) error
	Delete(ctx context.Context, id string) error
}
