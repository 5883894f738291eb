package repository

import (
	"github.com/google/uuid"
	"github.com/priyanshu461/gym-backoffice/internal/models"
	"gorm.io/gorm"
)

// RoutineRepository - серверное хранилище программ тренировок.
// Update заменяет документ целиком вместе с днями и упражнениями.
type RoutineRepository interface {
	Create(r *models.Routine) (*models.Routine, error)
	FindAll() ([]*models.Routine, error)
	FindByID(id string) (*models.Routine, error)
	Replace(r *models.Routine) error
	Delete(id string) error
}

type routineRepo struct {
	db *gorm.DB
}

func NewRoutineRepo(db *gorm.DB) RoutineRepository {
	return &routineRepo{db: db}
}

func (r *routineRepo) Create(routine *models.Routine) (*models.Routine, error) {
	assignIDs(routine)
	err := r.db.Create(routine).Error
	return routine, err
}

func (r *routineRepo) FindAll() ([]*models.Routine, error) {
	var routines []*models.Routine
	err := r.db.
		Preload("Days", orderByPosition).
		Preload("Days.Exercises", orderByPosition).
		Order("created_at").
		Find(&routines).Error
	return routines, err
}

func (r *routineRepo) FindByID(id string) (*models.Routine, error) {
	var routine models.Routine
	err := r.db.
		Preload("Days", orderByPosition).
		Preload("Days.Exercises", orderByPosition).
		First(&routine, "id = ?", id).Error
	return &routine, err
}

// Replace - полная замена документа: старые дни удаляются, новые
// вставляются заново. Дата создания и автор сохраняются.
func (r *routineRepo) Replace(routine *models.Routine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Routine
		if err := tx.First(&existing, "id = ?", routine.ID).Error; err != nil {
			return err
		}

		// упражнения удаляются каскадом по внешнему ключу
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.Day{}).Error; err != nil {
			return err
		}

		assignIDs(routine)
		routine.CreatedAt = existing.CreatedAt
		routine.CreatedBy = existing.CreatedBy
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(routine).Error
	})
}

func (r *routineRepo) Delete(id string) error {
	return r.db.Delete(&models.Routine{}, "id = ?", id).Error
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// assignIDs раздает UUID и позиции вложенным записям. Позиция
// фиксирует порядок из документа - он и есть порядок показа.
func assignIDs(r *models.Routine) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	for di := range r.Days {
		d := &r.Days[di]
		d.ID = uuid.NewString()
		d.RoutineID = r.ID
		d.Position = di
		for ei := range d.Exercises {
			e := &d.Exercises[ei]
			e.ID = uuid.NewString()
			e.DayID = d.ID
			e.Position = ei
		}
	}
}
