package get_room_page

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/roompage"
)

// RoomResponse HTTP response model комнаты
type RoomResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Size        float64 `json:"size"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
}

// BookedRangeResponse занятый диапазон дат комнаты
type BookedRangeResponse struct {
	ReservationID int64  `json:"reservationId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
}

// RoomPageResponse HTTP response model страницы комнаты
type RoomPageResponse struct {
	Room         RoomResponse          `json:"room"`
	ImageURL     string                `json:"imageUrl"`
	BookedRanges []BookedRangeResponse `json:"bookedRanges"`
	CanBook      bool                  `json:"canBook"`
	LoginURL     string                `json:"loginUrl,omitempty"`
}

// FromPage конвертирует страницу сервиса в HTTP response.
// Неавторизованному гостю вместо формы показывается ссылка на вход.
func FromPage(page *roompage.Page, guest domain.Guest, loginURL string) *RoomPageResponse {
	resp := &RoomPageResponse{
		Room: RoomResponse{
			ID:          page.Room.ID,
			Title:       page.Room.Title,
			Price:       page.Room.Price,
			Size:        page.Room.Size,
			Capacity:    page.Room.Capacity,
			Description: page.Room.Description,
		},
		ImageURL:     page.ImageURL,
		BookedRanges: make([]BookedRangeResponse, 0, len(page.Reservations)),
		CanBook:      guest.Authenticated,
	}

	for _, r := range page.Reservations {
		resp.BookedRanges = append(resp.BookedRanges, BookedRangeResponse{
			ReservationID: r.ID,
			CheckIn:       domain.FormatDay(r.CheckIn),
			CheckOut:      domain.FormatDay(r.CheckOut),
			Nights:        r.Nights(),
		})
	}

	if !guest.Authenticated {
		resp.LoginURL = loginURL
	}

	return resp
}
