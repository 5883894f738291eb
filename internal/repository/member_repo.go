package repository

import (
	"github.com/google/uuid"
	"github.com/priyanshu461/gym-backoffice/internal/models"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(m *models.Member) (*models.Member, error)
	FindAll() ([]*models.Member, error)
	FindByID(id string) (*models.Member, error)
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(m *models.Member) (*models.Member, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	err := r.db.Create(m).Error
	return m, err
}

func (r *memberRepo) FindAll() ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.Order("name").Find(&members).Error
	return members, err
}

func (r *memberRepo) FindByID(id string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	return &member, err
}
