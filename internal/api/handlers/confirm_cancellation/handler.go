package confirm_cancellation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-RoomBooking/internal/usecase/cancel_reservation"
)

const (
	msgConfirmationNotFound = "подтверждение отмены не найдено"
	msgConfirmationExpired  = "срок подтверждения отмены истек"
	statusAccepted          = "accepted"
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

// Handle POST /api/v1/cancellations/{token}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.PathString(r, "token")

	// Результат удаления гостю не показывается, канал не читается
	if _, err := h.useCase.Confirm(token); err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrConfirmationNotFound):
			h.logger.Warn("POST /cancellations/{token}/confirm - Confirmation not found")
			handlers.RespondNotFound(w, msgConfirmationNotFound)
		case errors.Is(err, cancelReservation.ErrConfirmationExpired):
			h.logger.Warn("POST /cancellations/{token}/confirm - Confirmation expired")
			handlers.RespondGone(w, msgConfirmationExpired)
		default:
			h.logger.Error("POST /cancellations/{token}/confirm - Failed to confirm cancellation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancellations/{token}/confirm - Cancellation accepted")
	handlers.RespondJSON(w, http.StatusAccepted, &AcceptedResponse{Status: statusAccepted})
}
