package request_cancellation

import (
	cancelReservation "github.com/m04kA/SMC-RoomBooking/internal/usecase/cancel_reservation"
)

type CancellationUseCase interface {
	Request(reservationID int64) (*cancelReservation.Confirmation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
