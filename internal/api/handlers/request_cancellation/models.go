package request_cancellation

import (
	"time"

	cancelReservation "github.com/m04kA/SMC-RoomBooking/internal/usecase/cancel_reservation"
)

// ConfirmationResponse HTTP response model ожидающего подтверждения отмены
type ConfirmationResponse struct {
	Token         string `json:"token"`
	ReservationID int64  `json:"reservationId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ExpiresAt     string `json:"expiresAt"`
}

// FromConfirmation конвертирует подтверждение use case в HTTP response
func FromConfirmation(c *cancelReservation.Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		Token:         c.Token,
		ReservationID: c.ReservationID,
		Title:         c.Title,
		Description:   c.Description,
		ExpiresAt:     c.ExpiresAt.Format(time.RFC3339),
	}
}
