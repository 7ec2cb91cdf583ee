package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrLoginRequired возвращается, когда гость не авторизован
	ErrLoginRequired = errors.New("submit_booking: login required")

	// ErrInvalidDates базовая ошибка некорректного диапазона дат
	ErrInvalidDates = errors.New("submit_booking: invalid dates")

	// ErrMissingDates возвращается, когда не выбрана дата заезда или выезда
	ErrMissingDates = fmt.Errorf("%w: check-in and check-out are required", ErrInvalidDates)

	// ErrSameDates возвращается, когда даты заезда и выезда совпадают
	ErrSameDates = fmt.Errorf("%w: check-in equals check-out", ErrInvalidDates)

	// ErrInvertedDates возвращается, когда выезд раньше заезда
	ErrInvertedDates = fmt.Errorf("%w: check-out is before check-in", ErrInvalidDates)

	// ErrPastDate возвращается при выборе прошедшего дня
	ErrPastDate = fmt.Errorf("%w: day is in the past", ErrInvalidDates)

	// ErrConflict возвращается, когда комната уже забронирована на выбранные даты
	ErrConflict = errors.New("submit_booking: room is already booked for the selected dates")

	// ErrDisposed возвращается при обращении к закрытому взаимодействию
	ErrDisposed = errors.New("submit_booking: interaction is disposed")
)
