package interactions

import "errors"

var (
	// ErrInteractionNotFound возвращается, когда взаимодействие не найдено или закрыто
	ErrInteractionNotFound = errors.New("interaction not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
