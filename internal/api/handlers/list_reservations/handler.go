package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
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

// Handle GET /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListReservations(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := reservationstore.ReservationListResponse{
		Data: make([]reservationstore.ReservationData, 0, len(items)),
	}
	for _, item := range items {
		response.Data = append(response.Data, reservationstore.FromDomainReservation(item.Reservation, item.Room))
	}

	h.logger.Info("GET /reservations - Reservations fetched: count=%d", len(response.Data))
	handlers.RespondJSON(w, http.StatusOK, response)
}
