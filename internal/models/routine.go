package models

import "time"

// Цели и уровни сложности программы тренировок.
const (
	GoalGeneral  = "General"
	GoalStrength = "Strength"
	GoalMuscle   = "Muscle"

	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Routine - программа тренировок, документ целиком
type Routine struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id,omitempty"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Goal             string    `gorm:"size:50" json:"goal"`
	Difficulty       string    `gorm:"size:50" json:"difficulty"`
	AssignedMemberID string    `gorm:"size:36" json:"assignedMemberId,omitempty"` // слабая ссылка на Member, без каскада
	Days             []Day     `gorm:"foreignKey:RoutineID;constraint:OnDelete:CASCADE" json:"days"`
	CreatedBy        string    `gorm:"size:36" json:"createdBy,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Day - тренировочный день внутри программы, порядок дней значим
type Day struct {
	ID        string     `gorm:"primaryKey;size:36" json:"-"`
	RoutineID string     `gorm:"size:36;index" json:"-"`
	Position  int        `json:"-"`
	Day       string     `gorm:"size:100" json:"day"`
	Exercises []Exercise `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// Exercise - упражнение внутри дня. Sets хранится строкой, как приходит
// из формы; валидатор требует положительное целое.
type Exercise struct {
	ID       string `gorm:"primaryKey;size:36" json:"-"`
	DayID    string `gorm:"size:36;index" json:"-"`
	Position int    `json:"-"`
	Name     string `gorm:"size:255" json:"name"`
	Sets     string `gorm:"size:20" json:"sets"`
	Reps     string `gorm:"size:50" json:"reps"`
	Rest     string `gorm:"size:50" json:"rest"`
}

// Clone возвращает глубокую копию программы. Копия редактируется
// независимо от оригинала в сторе.
func (r *Routine) Clone() *Routine {
	cp := *r
	cp.Days = make([]Day, len(r.Days))
	for i, d := range r.Days {
		dc := d
		dc.Exercises = make([]Exercise, len(d.Exercises))
		copy(dc.Exercises, d.Exercises)
		cp.Days[i] = dc
	}
	return &cp
}
