package get_alert

import (
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

type InteractionService interface {
	Get(id string) (*submit_booking.Controller, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
