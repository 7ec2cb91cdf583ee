package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID бронирования
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrConfirmationNotFound возвращается, когда подтверждение не найдено или уже использовано
	ErrConfirmationNotFound = errors.New("cancel_reservation: confirmation not found")

	// ErrConfirmationExpired возвращается, когда срок подтверждения истек
	ErrConfirmationExpired = errors.New("cancel_reservation: confirmation expired")
)
