// Package alert holds the single transient notification of a booking
// interaction and clears it after a fixed delay.
package alert

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
)

// Observer is notified whenever an alert is written. May be nil.
type Observer func(state domain.AlertState)

// Slot holds at most one AlertState. Each Set bumps the generation and
// schedules a clear tagged with it; a clear only applies when its generation
// is still current.
type Slot struct {
	mu         sync.Mutex
	clock      clock.Clock
	ttl        time.Duration
	state      domain.AlertState
	generation uint64
	timer      clock.Timer
	disposed   bool
	observer   Observer
}

// NewSlot creates an empty slot. ttl <= 0 falls back to domain.DefaultAlertTTL.
func NewSlot(c clock.Clock, ttl time.Duration, observer Observer) *Slot {
	if ttl <= 0 {
		ttl = domain.DefaultAlertTTL
	}
	return &Slot{clock: c, ttl: ttl, observer: observer}
}

// Set replaces the pending alert and returns its generation. After Dispose
// it is a no-op and returns 0.
func (s *Slot) Set(message string, kind domain.AlertKind) uint64 {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return 0
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.generation++
	gen := s.generation
	s.state = domain.AlertState{Message: message, Kind: kind}
	s.timer = s.clock.AfterFunc(s.ttl, func() { s.expire(gen) })
	state := s.state
	s.mu.Unlock()

	if s.observer != nil {
		s.observer(state)
	}
	return gen
}

// Current returns the pending alert, or an empty state.
func (s *Slot) Current() domain.AlertState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Generation returns the generation of the most recent Set.
func (s *Slot) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Clear empties the slot immediately and cancels the pending timer.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = domain.AlertState{}
}

// Dispose cancels the pending timer. The slot ignores every later Set.
func (s *Slot) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.disposed = true
	s.state = domain.AlertState{}
}

func (s *Slot) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer alert superseded this one
	if s.disposed || gen != s.generation {
		return
	}
	s.state = domain.AlertState{}
	s.timer = nil
}
