package interactions

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

// BookingUseCase создает контроллеры бронирования
type BookingUseCase interface {
	Start(roomID int64, snapshot []*domain.Reservation) *submit_booking.Controller
}

// SnapshotLoader загружает снимок бронирований для комнаты
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, roomID int64) ([]*domain.Reservation, error)
}

// StoreReader перечитывает комнаты и бронирования из хранилища
type StoreReader interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
	ListReservations(ctx context.Context) ([]*domain.Reservation, error)
}

// Metrics интерфейс для метрик. Может быть nil.
type Metrics interface {
	InteractionOpened()
	InteractionClosed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
