package close_interaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/interactions"
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

// Handle DELETE /api/v1/interactions/{interactionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.PathString(r, "interactionId")

	if err := h.service.Close(id); err != nil {
		if errors.Is(err, interactions.ErrInteractionNotFound) {
			h.logger.Warn("DELETE /interactions/{id} - Interaction not found: id=%s", id)
			handlers.RespondNotFound(w, msgInteractionNotFound)
			return
		}
		h.logger.Error("DELETE /interactions/{id} - Failed to close interaction: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /interactions/{id} - Interaction closed: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
