package open_interaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/interactions"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgRoomNotFound  = "room not found"
)

type Handler struct {
	service InteractionService
	mode    string
	logger  Logger
}

func NewHandler(service InteractionService, mode string, logger Logger) *Handler {
	return &Handler{
		service: service,
		mode:    mode,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/interactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/interactions - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	id, _, err := h.service.Open(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, interactions.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/interactions - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
		default:
			h.logger.Error("POST /rooms/{id}/interactions - Failed to open interaction: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/interactions - Interaction opened: id=%s, room_id=%d", id, roomID)
	handlers.RespondJSON(w, http.StatusCreated, &InteractionResponse{
		InteractionID: id,
		RoomID:        roomID,
		Mode:          h.mode,
	})
}
