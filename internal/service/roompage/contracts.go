package roompage

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// ReservationStore интерфейс клиента хранилища бронирований
type ReservationStore interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	ListReservations(ctx context.Context) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
