package get_room_page

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/service/roompage"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgRoomNotFound  = "room not found"
)

type Handler struct {
	service  RoomPageService
	loginURL string
	logger   Logger
}

func NewHandler(service RoomPageService, loginURL string, logger Logger) *Handler {
	return &Handler{
		service:  service,
		loginURL: loginURL,
		logger:   logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	page, err := h.service.GetPage(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, roompage.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, roompage.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id} - Invalid input: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
		default:
			h.logger.Error("GET /rooms/{id} - Failed to load room page: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	guest := middleware.GetGuest(r.Context())

	h.logger.Info("GET /rooms/{id} - Room page loaded: room_id=%d, booked=%d", roomID, len(page.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromPage(page, guest, h.loginURL))
}
