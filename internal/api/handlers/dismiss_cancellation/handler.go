package dismiss_cancellation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-RoomBooking/internal/usecase/cancel_reservation"
)

const (
	msgConfirmationNotFound = "подтверждение отмены не найдено"
	msgConfirmationExpired  = "срок подтверждения отмены истек"
)

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

// Handle DELETE /api/v1/cancellations/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.PathString(r, "token")

	if err := h.useCase.Dismiss(token); err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrConfirmationNotFound):
			h.logger.Warn("DELETE /cancellations/{token} - Confirmation not found")
			handlers.RespondNotFound(w, msgConfirmationNotFound)
		case errors.Is(err, cancelReservation.ErrConfirmationExpired):
			h.logger.Warn("DELETE /cancellations/{token} - Confirmation expired")
			handlers.RespondGone(w, msgConfirmationExpired)
		default:
			h.logger.Error("DELETE /cancellations/{token} - Failed to dismiss cancellation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cancellations/{token} - Cancellation dismissed")
	w.WriteHeader(http.StatusNoContent)
}
