package reservationstore

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("reservationstore: room not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservationstore: reservation not found")

	// ErrOverlap возвращается, когда хранилище отклонило пересекающееся бронирование (409)
	ErrOverlap = errors.New("reservationstore: reservation overlaps an existing one")

	// ErrRejected возвращается, когда хранилище отклонило тело запроса (400)
	ErrRejected = errors.New("reservationstore: payload rejected")

	// ErrInvalidPayload возвращается, когда исходящие данные не прошли валидацию
	ErrInvalidPayload = errors.New("reservationstore: invalid payload")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("reservationstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("reservationstore client: invalid response")
)
