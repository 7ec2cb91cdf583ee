package submit_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// validateCandidate проверяет форму диапазона дат до проверки доступности.
// Порядок проверок фиксирован: пустые даты, один день, обратный порядок.
func validateCandidate(c domain.CandidateRange) error {
	if !c.IsComplete() {
		return ErrMissingDates
	}

	if domain.SameDay(*c.CheckIn, *c.CheckOut) {
		return ErrSameDates
	}

	if domain.StartOfDay(*c.CheckOut).Before(domain.StartOfDay(*c.CheckIn)) {
		return ErrInvertedDates
	}

	return nil
}

// validateDay проверяет, что день не в прошлом относительно now
func validateDay(day, now time.Time) error {
	if domain.IsPastDay(day, now) {
		return ErrPastDate
	}
	return nil
}

// alertMessage возвращает текст уведомления для ошибки валидации
func alertMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingDates):
		return domain.MsgSelectDates
	case errors.Is(err, ErrSameDates):
		return domain.MsgSameDates
	case errors.Is(err, ErrInvertedDates):
		return domain.MsgCheckOutBeforeIn
	case errors.Is(err, ErrPastDate):
		return domain.MsgPastDate
	case errors.Is(err, ErrConflict):
		return domain.MsgAlreadyBooked
	default:
		return domain.MsgBookingFailed
	}
}
