package routine

import (
	"sync"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Store - клиентский кэш сохраненных программ. Зеркалит состояние
// сервера, порядок вставки сохраняется для списка. Черновики без ID
// сюда не попадают.
type Store struct {
	mu    sync.RWMutex
	order []string
	items map[string]*models.Routine
}

func NewStore() *Store {
	return &Store{items: make(map[string]*models.Routine)}
}

// ReplaceAll заменяет содержимое целиком ответом сервера. Записи без
// ID и повторные ID молча пропускаются - в сторе не бывает двух
// программ с одним ID.
func (s *Store) ReplaceAll(routines []*models.Routine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.items = make(map[string]*models.Routine, len(routines))
	for _, r := range routines {
		if r.ID == "" {
			continue
		}
		if _, ok := s.items[r.ID]; ok {
			continue
		}
		s.order = append(s.order, r.ID)
		s.items[r.ID] = r.Clone()
	}
}

// Get возвращает копию программы - изменения у вызывающего не
// просачиваются в кэш.
func (s *Store) Get(id string) (*models.Routine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// List возвращает копии программ в порядке вставки.
func (s *Store) List() []*models.Routine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Routine, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
