package domain

import "time"

// Reservation holds one guest's stay on one room for the calendar days
// [CheckIn, CheckOut). Reservations are created and deleted, never updated.
type Reservation struct {
	ID        int64
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	FirstName string
	LastName  string
	Email     string
}

// Nights returns the number of nights covered by the reservation
func (r *Reservation) Nights() int {
	return DaysBetween(r.CheckIn, r.CheckOut)
}

// NewReservation is the create payload sent to the reservation store.
type NewReservation struct {
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	FirstName string
	LastName  string
	Email     string
}

// Reservation returns the not yet persisted reservation the payload describes.
// Its ID is zero until the store assigns one.
func (n *NewReservation) Reservation() *Reservation {
	return &Reservation{
		RoomID:    n.RoomID,
		CheckIn:   n.CheckIn,
		CheckOut:  n.CheckOut,
		FirstName: n.FirstName,
		LastName:  n.LastName,
		Email:     n.Email,
	}
}

// CandidateRange is the unsaved date range a guest is about to book.
// A nil day means the guest has not picked it yet.
type CandidateRange struct {
	RoomID   int64
	CheckIn  *time.Time
	CheckOut *time.Time
}

// IsComplete returns true if both days are picked
func (c CandidateRange) IsComplete() bool {
	return c.CheckIn != nil && c.CheckOut != nil
}

// Guest is the identity supplied by the session collaborator.
type Guest struct {
	FirstName     string
	LastName      string
	Email         string
	Authenticated bool
}
