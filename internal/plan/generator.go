package plan

import (
	"fmt"

	"github.com/priyanshu461/gym-backoffice/internal/models"
)

// Suggest - шаблонный генератор текста плана под цель и уровень.
// Никакого ИИ, обычные правила.
func Suggest(goal, difficulty string) string {
	var focus string
	switch goal {
	case models.GoalStrength:
		focus = "базовые движения с весом 80-90% от максимума, 3-5 повторений"
	case models.GoalMuscle:
		focus = "изолированные и базовые упражнения, 8-12 повторений до отказа"
	default:
		focus = "круговые тренировки всего тела, 12-15 повторений"
	}

	var volume string
	switch difficulty {
	case models.DifficultyAdvanced:
		volume = "5-6 дней в неделю, сплит по группам мышц"
	case models.DifficultyIntermediate:
		volume = "3-4 дня в неделю, верх/низ"
	default:
		volume = "2-3 дня в неделю, все тело за тренировку"
	}

	return fmt.Sprintf("Рекомендация: %s. Режим: %s. Отдых между подходами 60-120 секунд, прогрессия нагрузки еженедельно.", focus, volume)
}

// GoalForCategory подбирает цель по категории ИМТ - для клиентов,
// которым программа еще не назначена.
func GoalForCategory(category string) string {
	switch category {
	case Underweight:
		return models.GoalMuscle
	case Normal:
		return models.GoalStrength
	default:
		return models.GoalGeneral
	}
}
