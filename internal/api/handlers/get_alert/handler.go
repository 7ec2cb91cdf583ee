package get_alert

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const msgInteractionNotFound = "взаимодействие не найдено"

type Handler struct {
	service InteractionService
	logger  Logger
}

func NewHandler(service InteractionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/interactions/{interactionId}/alert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.PathString(r, "interactionId")

	controller, err := h.service.Get(id)
	if err != nil {
		h.logger.Warn("GET /interactions/{id}/alert - Interaction not found: id=%s", id)
		handlers.RespondNotFound(w, msgInteractionNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(controller.Result()))
}
