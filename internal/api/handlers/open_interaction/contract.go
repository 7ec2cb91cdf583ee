package open_interaction

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

type InteractionService interface {
	Open(ctx context.Context, roomID int64) (string, *submit_booking.Controller, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
