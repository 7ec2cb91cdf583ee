package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

const (
	msgInteractionNotFound = "взаимодействие не найдено"
	msgLoginRequired       = "для бронирования необходимо войти"
)

type Handler struct {
	service  InteractionService
	loginURL string
	logger   Logger
}

func NewHandler(service InteractionService, loginURL string, logger Logger) *Handler {
	return &Handler{
		service:  service,
		loginURL: loginURL,
		logger:   logger,
	}
}

// Handle POST /api/v1/interactions/{interactionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.PathString(r, "interactionId")

	controller, err := h.service.Get(id)
	if err != nil {
		h.logger.Warn("POST /interactions/{id}/submit - Interaction not found: id=%s", id)
		handlers.RespondNotFound(w, msgInteractionNotFound)
		return
	}

	guest := middleware.GetGuest(r.Context())

	result, err := controller.Submit(guest)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrLoginRequired):
			h.logger.Warn("POST /interactions/{id}/submit - Login required: id=%s", id)
			handlers.RespondJSON(w, http.StatusUnauthorized, &LoginRequiredResponse{
				Code:     http.StatusUnauthorized,
				Message:  msgLoginRequired,
				LoginURL: h.loginURL,
			})
		case errors.Is(err, submitBooking.ErrDisposed):
			h.logger.Warn("POST /interactions/{id}/submit - Interaction closed: id=%s", id)
			handlers.RespondNotFound(w, msgInteractionNotFound)
		default:
			h.logger.Error("POST /interactions/{id}/submit - Failed to submit booking: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Создание еще выполняется, итог придет в уведомлении
	status := http.StatusOK
	if result.State == domain.StateSubmitting {
		status = http.StatusAccepted
	}

	h.logger.Info("POST /interactions/{id}/submit - Submitted: id=%s, state=%s", id, result.State)
	handlers.RespondJSON(w, status, FromUseCaseResult(result))
}
