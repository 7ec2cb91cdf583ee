package get_store_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/internal/service/store"
)

const (
	errNameNotFound   = "NotFoundError"
	errNameValidation = "ValidationError"
	msgNotFound       = "Not Found"
	msgInvalidRoomID  = "некорректный ID комнаты"
)

type Handler struct {
	service StoreService
	logger  Logger
}

func NewHandler(service StoreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/rooms/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondStoreError(w, http.StatusBadRequest, errNameValidation, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetRoom(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondStoreError(w, http.StatusNotFound, errNameNotFound, msgNotFound)
		default:
			h.logger.Error("GET /rooms/{id} - Failed to get room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id} - Room fetched: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, &reservationstore.RoomResponse{Data: reservationstore.FromDomainRoom(room)})
}
