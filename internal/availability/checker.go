// Package availability decides whether a candidate date range may be booked
// on a room given the reservations already known for it.
package availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// CheckConflict reports whether any reservation on roomID collides with the
// candidate range [checkIn, checkOut). Reservations on other rooms and nil
// entries are ignored. All four days are compared at midnight.
func CheckConflict(existing []*domain.Reservation, roomID int64, checkIn, checkOut time.Time) bool {
	ci := domain.StartOfDay(checkIn)
	co := domain.StartOfDay(checkOut)

	for _, r := range existing {
		if r == nil || r.RoomID != roomID {
			continue
		}
		if collides(ci, co, domain.StartOfDay(r.CheckIn), domain.StartOfDay(r.CheckOut)) {
			return true
		}
	}
	return false
}

// Conflicts returns every reservation on roomID that collides with the
// candidate range, in input order.
func Conflicts(existing []*domain.Reservation, roomID int64, checkIn, checkOut time.Time) []*domain.Reservation {
	ci := domain.StartOfDay(checkIn)
	co := domain.StartOfDay(checkOut)

	out := make([]*domain.Reservation, 0)
	for _, r := range existing {
		if r == nil || r.RoomID != roomID {
			continue
		}
		if collides(ci, co, domain.StartOfDay(r.CheckIn), domain.StartOfDay(r.CheckOut)) {
			out = append(out, r)
		}
	}
	return out
}

// collides applies the booking policy's four clauses. The check-in bounds
// are strict and the check-out bounds inclusive: a stay may start on another
// stay's check-out day, but may not end on another stay's check-out day.
func collides(ci, co, ei, eo time.Time) bool {
	// (a) candidate check-in falls inside the existing stay
	if !ci.Before(ei) && ci.Before(eo) {
		return true
	}
	// (b) candidate check-out falls inside the existing stay, or on its check-out
	if co.After(ei) && !co.After(eo) {
		return true
	}
	// (c) existing check-in falls inside the candidate
	if ei.After(ci) && ei.Before(co) {
		return true
	}
	// (d) existing check-out falls inside the candidate, or on its check-out
	if eo.After(ci) && !eo.After(co) {
		return true
	}
	return false
}
