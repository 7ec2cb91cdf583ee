package delete_reservation

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/store/models"
)

type StoreService interface {
	DeleteReservation(ctx context.Context, id int64) (*models.ReservationWithRoom, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
