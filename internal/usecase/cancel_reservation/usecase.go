package cancel_reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
)

// UseCase двухшаговая отмена бронирования: запрос подтверждения, затем удаление.
// Результат удаления никогда не превращается в уведомление для гостя.
type UseCase struct {
	store     ReservationStore
	refresher Refresher
	runner    Runner
	clock     clock.Clock
	metrics   Metrics
	ttl       time.Duration
	logger    Logger

	mu      sync.Mutex
	pending map[string]*Confirmation
}

// NewUseCase создает новый экземпляр use case. ttl <= 0 - domain.DefaultConfirmationTTL.
func NewUseCase(
	store ReservationStore,
	refresher Refresher,
	runner Runner,
	clk clock.Clock,
	metrics Metrics,
	ttl time.Duration,
	logger Logger,
) *UseCase {
	if ttl <= 0 {
		ttl = domain.DefaultConfirmationTTL
	}
	return &UseCase{
		store:     store,
		refresher: refresher,
		runner:    runner,
		clock:     clk,
		metrics:   metrics,
		ttl:       ttl,
		logger:    logger,
		pending:   make(map[string]*Confirmation),
	}
}

// Request создает подтверждение отмены для бронирования
func (uc *UseCase) Request(reservationID int64) (*Confirmation, error) {
	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	now := uc.clock.Now()
	c := &Confirmation{
		Token:         uuid.NewString(),
		ReservationID: reservationID,
		Title:         domain.MsgCancelConfirmTitle,
		Description:   domain.MsgCancelConfirmBody,
		ExpiresAt:     now.Add(uc.ttl),
	}

	uc.mu.Lock()
	uc.purgeExpiredLocked(now)
	uc.pending[c.Token] = c
	uc.mu.Unlock()

	uc.observe(OutcomeRequested)
	uc.logger.Info("CancelReservation: confirmation requested for reservation id=%d", reservationID)

	out := *c
	return &out, nil
}

// Confirm подтверждает отмену и запускает удаление в фоне.
// Канал получает результат удаления; вызывающий может его игнорировать.
func (uc *UseCase) Confirm(token string) (<-chan Result, error) {
	c, err := uc.take(token)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: confirmed for reservation id=%d", c.ReservationID)

	done := make(chan Result, 1)
	uc.runner.Go(func(ctx context.Context) {
		done <- uc.delete(ctx, c.ReservationID)
		close(done)
	})

	return done, nil
}

// Dismiss отклоняет подтверждение без удаления
func (uc *UseCase) Dismiss(token string) error {
	c, err := uc.take(token)
	if err != nil {
		return err
	}

	uc.observe(OutcomeDismissed)
	uc.logger.Info("CancelReservation: dismissed for reservation id=%d", c.ReservationID)
	return nil
}

// Pending возвращает число ожидающих подтверждений
func (uc *UseCase) Pending() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.pending)
}

func (uc *UseCase) take(token string) (*Confirmation, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c, ok := uc.pending[token]
	if !ok {
		return nil, ErrConfirmationNotFound
	}
	delete(uc.pending, token)

	if !uc.clock.Now().Before(c.ExpiresAt) {
		uc.observe(OutcomeExpired)
		return nil, ErrConfirmationExpired
	}

	return c, nil
}

// delete удаляет бронирование и запускает обновление.
// Локально бронирование не удаляется: список меняется только после обновления.
func (uc *UseCase) delete(ctx context.Context, reservationID int64) Result {
	err := uc.store.DeleteReservation(ctx, reservationID)
	if err != nil {
		uc.observe(OutcomeFailed)
		uc.logger.Error("CancelReservation: failed to delete reservation id=%d: %v", reservationID, err)
	} else {
		uc.observe(OutcomeDeleted)
		uc.logger.Info("CancelReservation: successfully deleted reservation id=%d", reservationID)
	}

	if uc.refresher != nil {
		uc.refresher.Refresh(ctx)
	}

	return Result{ReservationID: reservationID, Err: err}
}

func (uc *UseCase) purgeExpiredLocked(now time.Time) {
	for token, c := range uc.pending {
		if !now.Before(c.ExpiresAt) {
			delete(uc.pending, token)
			uc.observe(OutcomeExpired)
		}
	}
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveCancellation(outcome)
	}
}
