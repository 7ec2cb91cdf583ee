package roompage

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// Page данные страницы комнаты
type Page struct {
	Room     *domain.Room
	ImageURL string
	// Reservations бронирования этой комнаты, по дате заезда
	Reservations []*domain.Reservation
	// Snapshot все известные бронирования, снимок для проверки доступности
	Snapshot []*domain.Reservation
}
