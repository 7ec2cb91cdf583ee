package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *domain.NewReservation) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
