package models

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// ReservationWithRoom бронирование вместе со связанной комнатой (populate=*).
// Room равен nil, если комната уже удалена.
type ReservationWithRoom struct {
	Reservation *domain.Reservation
	Room        *domain.Room
}
