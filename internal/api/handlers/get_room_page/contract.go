package get_room_page

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/roompage"
)

type RoomPageService interface {
	GetPage(ctx context.Context, roomID int64) (*roompage.Page, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
