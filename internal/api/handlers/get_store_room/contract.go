package get_store_room

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type StoreService interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
