package models

import "time"

// Member - клиент зала. Программа ссылается на него только для
// отображения, ядро данные клиентов не меняет.
type Member struct {
	ID       string    `gorm:"primaryKey;size:36" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255" json:"email,omitempty"`
	Phone    string    `gorm:"size:50" json:"phone,omitempty"`
	HeightCm float64   `json:"heightCm,omitempty"`
	WeightKg float64   `json:"weightKg,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}
