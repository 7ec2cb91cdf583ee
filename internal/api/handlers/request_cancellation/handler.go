package request_cancellation

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const msgInvalidReservationID = "некорректный ID бронирования"

type Handler struct {
	useCase CancellationUseCase
	logger  Logger
}

func NewHandler(useCase CancellationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/cancellation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/cancellation - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	confirmation, err := h.useCase.Request(reservationID)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/cancellation - Request rejected: reservation_id=%d, error=%v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	h.logger.Info("POST /reservations/{id}/cancellation - Confirmation requested: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromConfirmation(confirmation))
}
