package select_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInteractionNotFound = "взаимодействие не найдено"
)

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

// Handle PUT /api/v1/interactions/{interactionId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := handlers.PathString(r, "interactionId")

	var req SelectDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /interactions/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /interactions/{id}/dates - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	controller, err := h.service.Get(id)
	if err != nil {
		h.logger.Warn("PUT /interactions/{id}/dates - Interaction not found: id=%s", id)
		handlers.RespondNotFound(w, msgInteractionNotFound)
		return
	}

	candidate, err := controller.SelectDates(useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submit_booking.ErrDisposed):
			h.logger.Warn("PUT /interactions/{id}/dates - Interaction closed: id=%s", id)
			handlers.RespondNotFound(w, msgInteractionNotFound)
		case errors.Is(err, submit_booking.ErrInvalidDates):
			// Даты не изменились, гостю показывается уведомление
			h.logger.Warn("PUT /interactions/{id}/dates - Dates rejected: id=%s, error=%v", id, err)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, FromCandidate(candidate, controller.Alert()))
		default:
			h.logger.Error("PUT /interactions/{id}/dates - Failed to select dates: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /interactions/{id}/dates - Dates selected: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromCandidate(candidate, controller.Alert()))
}
