package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	createReservation "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RoomBooking/pkg/ptr"
)

const (
	errNameValidation     = "ValidationError"
	errNameConflict       = "ConflictError"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPayload     = "некорректные данные бронирования"
	msgRoomNotFound       = "комната не найдена"
	msgOverlap            = "комната уже забронирована на выбранные даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req reservationstore.CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondStoreError(w, http.StatusBadRequest, errNameValidation, msgInvalidRequestBody)
		return
	}

	// Проверяем форму тела до обращения к базе
	payload, err := reservationstore.ToDomainNewReservation(&req)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid payload: %v", err)
		handlers.RespondStoreError(w, http.StatusBadRequest, errNameValidation, msgInvalidPayload)
		return
	}

	created, err := h.useCase.Execute(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrOverlap):
			h.logger.Warn("POST /reservations - Overlap: room_id=%d, %s..%s",
				payload.RoomID, req.Data.CheckIn, req.Data.CheckOut)
			handlers.RespondStoreError(w, http.StatusConflict, errNameConflict, msgOverlap)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", payload.RoomID)
			handlers.RespondStoreError(w, http.StatusBadRequest, errNameValidation, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondStoreError(w, http.StatusBadRequest, errNameValidation, msgInvalidPayload)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, error=%v", payload.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, room_id=%d", created.ID, created.RoomID)
	handlers.RespondJSON(w, http.StatusOK, &reservationstore.ReservationResponse{
		Data: ptr.Ptr(reservationstore.FromDomainReservation(created, nil)),
	})
}
