package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/store/models"
)

type StoreService interface {
	ListReservations(ctx context.Context) ([]models.ReservationWithRoom, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
