package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/priyanshu461/gym-backoffice/internal/models"
	"github.com/priyanshu461/gym-backoffice/internal/notify"
	"github.com/priyanshu461/gym-backoffice/internal/plan"
	"github.com/priyanshu461/gym-backoffice/internal/repository"
	"github.com/priyanshu461/gym-backoffice/internal/routine"
	"github.com/priyanshu461/gym-backoffice/pkg/utils"
)

// Handlers держит зависимости обработчиков. notifier может быть nil.
type Handlers struct {
	routines repository.RoutineRepository
	members  repository.MemberRepository
	notifier notify.Notifier
}

func NewHandlers(routines repository.RoutineRepository, members repository.MemberRepository, notifier notify.Notifier) *Handlers {
	return &Handlers{routines: routines, members: members, notifier: notifier}
}

// ListRoutines - GET /api/routines
func (h *Handlers) ListRoutines(c *gin.Context) {
	routines, err := h.routines.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routines)
}

// GetRoutine - GET /api/routines/:id
func (h *Handlers) GetRoutine(c *gin.Context) {
	r, err := h.routines.FindByID(c.Param("id"))
	if err != nil {
		notFoundOr500(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateRoutine - POST /api/routines. Сервер присваивает ID и
// отдает созданный документ.
func (h *Handlers) CreateRoutine(c *gin.Context) {
	var input models.Routine
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = ""

	created, err := h.routines.Create(&input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.notifyAssignment(created)
	c.JSON(http.StatusCreated, created)
}

// UpdateRoutine - PUT /api/routines/:id, полная замена документа.
func (h *Handlers) UpdateRoutine(c *gin.Context) {
	var input models.Routine
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	if err := h.routines.Replace(&input); err != nil {
		notFoundOr500(c, err)
		return
	}

	h.notifyAssignment(&input)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteRoutine - DELETE /api/routines/:id
func (h *Handlers) DeleteRoutine(c *gin.Context) {
	if err := h.routines.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportRoutine - GET /api/routines/:id/export, выгрузка CSV.
func (h *Handlers) ExportRoutine(c *gin.Context) {
	r, err := h.routines.FindByID(c.Param("id"))
	if err != nil {
		notFoundOr500(c, err)
		return
	}

	text, err := routine.MarshalCSV(routine.ToRows(r))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+routine.ExportFilename(r.Name)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(text))
}

// ListMembers - GET /api/members, для селекта назначения.
func (h *Handlers) ListMembers(c *gin.Context) {
	members, err := h.members.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember - POST /api/members
func (h *Handlers) CreateMember(c *gin.Context) {
	var input models.Member
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = ""

	created, err := h.members.Create(&input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMember - GET /api/members/:id, карточка клиента с ИМТ и
// рекомендацией плана.
func (h *Handlers) GetMember(c *gin.Context) {
	m, err := h.members.FindByID(c.Param("id"))
	if err != nil {
		notFoundOr500(c, err)
		return
	}

	bmi := plan.BMI(m.WeightKg, m.HeightCm)
	category := plan.Categorize(bmi)

	// цель и уровень берем из назначенной программы, иначе по ИМТ
	goal, difficulty := plan.GoalForCategory(category), models.DifficultyBeginner
	if routines, err := h.routines.FindAll(); err == nil {
		for _, r := range routines {
			if r.AssignedMemberID == m.ID {
				goal, difficulty = r.Goal, r.Difficulty
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"member":        m,
		"bmi":           bmi,
		"bmiCategory":   category,
		"suggestedPlan": plan.Suggest(goal, difficulty),
	})
}

// notifyAssignment шлет уведомление, если программа назначена
// клиенту. Провал уведомления запрос не ломает.
func (h *Handlers) notifyAssignment(r *models.Routine) {
	if h.notifier == nil || r.AssignedMemberID == "" {
		return
	}
	m, err := h.members.FindByID(r.AssignedMemberID)
	if err != nil {
		utils.Log.Errorf("notify: member %s: %v", r.AssignedMemberID, err)
		return
	}
	if err := h.notifier.RoutineAssigned(m.Name, r.Name); err != nil {
		utils.Log.Errorf("notify: %v", err)
	}
}

func notFoundOr500(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "не найдено"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
