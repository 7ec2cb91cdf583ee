package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/internal/service/store"
	"github.com/m04kA/SMC-RoomBooking/pkg/ptr"
)

const (
	errNameNotFound         = "NotFoundError"
	errNameValidation       = "ValidationError"
	msgNotFound             = "Not Found"
	msgInvalidReservationID = "некорректный ID бронирования"
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

// Handle DELETE /api/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondStoreError(w, http.StatusBadRequest, errNameValidation, msgInvalidReservationID)
		return
	}

	deleted, err := h.service.DeleteReservation(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondStoreError(w, http.StatusNotFound, errNameNotFound, msgNotFound)
		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, &reservationstore.ReservationResponse{
		Data: ptr.Ptr(reservationstore.FromDomainReservation(deleted.Reservation, deleted.Room)),
	})
}
