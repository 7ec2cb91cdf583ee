package submit_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Mode режим обработки результата создания бронирования
type Mode string

const (
	// ModeOptimistic успех показывается сразу, ошибка создания только логируется
	ModeOptimistic Mode = "optimistic"
	// ModeConfirmed уведомление выставляется по результату создания
	ModeConfirmed Mode = "confirmed"
)

// ParseMode разбирает режим из конфигурации. Пустая строка - ModeOptimistic.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeOptimistic:
		return ModeOptimistic, nil
	case ModeConfirmed:
		return ModeConfirmed, nil
	default:
		return "", fmt.Errorf("submit_booking: unknown mode %q", s)
	}
}

// Config настройки взаимодействий
type Config struct {
	Mode     Mode
	AlertTTL time.Duration // <= 0 - domain.DefaultAlertTTL
}

// Result состояние взаимодействия после отправки
type Result struct {
	State domain.WorkflowState
	Alert domain.AlertState
}

// DatesRequest выбор дат. nil - дата не меняется.
type DatesRequest struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}
