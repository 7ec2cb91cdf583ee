package cancel_reservation

import (
	"context"
)

// ReservationStore интерфейс клиента хранилища бронирований
type ReservationStore interface {
	DeleteReservation(ctx context.Context, reservationID int64) error
}

// Refresher перечитывает данные открытых взаимодействий после изменения хранилища
type Refresher interface {
	Refresh(ctx context.Context)
}

// Runner запускает фоновые задачи без ожидания результата
type Runner interface {
	Go(task func(ctx context.Context))
}

// Metrics интерфейс для метрик. Может быть nil.
type Metrics interface {
	ObserveCancellation(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
