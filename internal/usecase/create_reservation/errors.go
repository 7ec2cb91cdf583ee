package create_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrOverlap возвращается, когда диапазон пересекается с существующим бронированием
	ErrOverlap = errors.New("create_reservation: reservation overlaps an existing one")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
