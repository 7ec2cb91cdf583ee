package confirm_cancellation

import (
	cancelReservation "github.com/m04kA/SMC-RoomBooking/internal/usecase/cancel_reservation"
)

type CancellationUseCase interface {
	Confirm(token string) (<-chan cancelReservation.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
