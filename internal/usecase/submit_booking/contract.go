package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// ReservationStore интерфейс клиента хранилища бронирований
type ReservationStore interface {
	CreateReservation(ctx context.Context, r *domain.NewReservation) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]*domain.Reservation, error)
}

// Refresher перечитывает комнату и бронирования для всех открытых взаимодействий
type Refresher interface {
	Refresh(ctx context.Context)
}

// Runner запускает фоновые задачи без ожидания результата
type Runner interface {
	Go(task func(ctx context.Context))
}

// ConflictChecker проверка пересечения кандидата с известными бронированиями
type ConflictChecker func(existing []*domain.Reservation, roomID int64, checkIn, checkOut time.Time) bool

// Metrics интерфейс для метрик. Может быть nil.
type Metrics interface {
	ObserveSubmission(state string)
	ObserveAlert(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
