package cancel_reservation

import "time"

// Исходы отмены для метрик
const (
	OutcomeRequested = "requested"
	OutcomeDismissed = "dismissed"
	OutcomeExpired   = "expired"
	OutcomeDeleted   = "deleted"
	OutcomeFailed    = "failed"
)

// Confirmation ожидающее подтверждение отмены
type Confirmation struct {
	Token         string
	ReservationID int64
	Title         string
	Description   string
	ExpiresAt     time.Time
}

// Result результат фонового удаления
type Result struct {
	ReservationID int64
	Err           error
}
