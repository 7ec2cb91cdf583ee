package cancel_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/async"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) DeleteReservation(ctx context.Context, reservationID int64) error {
	return m.Called(ctx, reservationID).Error(0)
}

type countingRefresher struct {
	mu    sync.Mutex
	calls int
}

func (r *countingRefresher) Refresh(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
}

func (r *countingRefresher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recordingMetrics) ObserveCancellation(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

type fixture struct {
	uc        *UseCase
	store     *mockStore
	refresher *countingRefresher
	metrics   *recordingMetrics
	group     *async.Group
	clock     *clock.Fake
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:     &mockStore{},
		refresher: &countingRefresher{},
		metrics:   &recordingMetrics{},
		group:     async.NewGroup(),
		clock:     clock.NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	t.Cleanup(f.group.Close)
	f.uc = NewUseCase(f.store, f.refresher, f.group, f.clock, f.metrics, time.Minute, logger.Nop())
	return f
}

func TestRequest_ReturnsConfirmationPrompt(t *testing.T) {
	f := newFixture(t)

	c, err := f.uc.Request(42)

	require.NoError(t, err)
	assert.NotEmpty(t, c.Token)
	assert.Equal(t, int64(42), c.ReservationID)
	assert.Equal(t, domain.MsgCancelConfirmTitle, c.Title)
	assert.Equal(t, domain.MsgCancelConfirmBody, c.Description)
	assert.Equal(t, f.clock.Now().Add(time.Minute), c.ExpiresAt)
	assert.Equal(t, 1, f.uc.Pending())
	f.store.AssertNotCalled(t, "DeleteReservation", mock.Anything, mock.Anything)
}

func TestRequest_InvalidID(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Request(0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirm_DeletesAndRefreshesEvenWhenDeleteFails(t *testing.T) {
	f := newFixture(t)
	f.store.On("DeleteReservation", mock.Anything, int64(42)).Return(errors.New("500 internal server error")).Once()

	c, err := f.uc.Request(42)
	require.NoError(t, err)

	done, err := f.uc.Confirm(c.Token)
	require.NoError(t, err)

	result := <-done
	f.group.Wait()

	assert.Equal(t, int64(42), result.ReservationID)
	assert.Error(t, result.Err)
	assert.Equal(t, 1, f.refresher.count())
	f.store.AssertExpectations(t)
	assert.Equal(t, []string{OutcomeRequested, OutcomeFailed}, f.metrics.outcomes)
}

func TestConfirm_Success(t *testing.T) {
	f := newFixture(t)
	f.store.On("DeleteReservation", mock.Anything, int64(7)).Return(nil).Once()

	c, err := f.uc.Request(7)
	require.NoError(t, err)
	done, err := f.uc.Confirm(c.Token)
	require.NoError(t, err)

	result := <-done
	assert.NoError(t, result.Err)
	f.group.Wait()
	assert.Equal(t, 1, f.refresher.count())
}

func TestConfirm_TokenIsSingleUse(t *testing.T) {
	f := newFixture(t)
	f.store.On("DeleteReservation", mock.Anything, int64(7)).Return(nil).Once()

	c, err := f.uc.Request(7)
	require.NoError(t, err)
	_, err = f.uc.Confirm(c.Token)
	require.NoError(t, err)

	_, err = f.uc.Confirm(c.Token)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)

	f.group.Wait()
	f.store.AssertNumberOfCalls(t, "DeleteReservation", 1)
}

func TestDismiss_NeverDeletes(t *testing.T) {
	f := newFixture(t)

	c, err := f.uc.Request(42)
	require.NoError(t, err)

	require.NoError(t, f.uc.Dismiss(c.Token))
	_, err = f.uc.Confirm(c.Token)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)
	assert.ErrorIs(t, f.uc.Dismiss("unknown"), ErrConfirmationNotFound)

	f.group.Wait()
	f.store.AssertNotCalled(t, "DeleteReservation", mock.Anything, mock.Anything)
	assert.Zero(t, f.refresher.count())
}

func TestConfirm_ExpiredConfirmation(t *testing.T) {
	f := newFixture(t)

	c, err := f.uc.Request(42)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)

	_, err = f.uc.Confirm(c.Token)
	assert.ErrorIs(t, err, ErrConfirmationExpired)
	f.store.AssertNotCalled(t, "DeleteReservation", mock.Anything, mock.Anything)
}

func TestRequest_PurgesExpiredConfirmations(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Request(1)
	require.NoError(t, err)
	_, err = f.uc.Request(2)
	require.NoError(t, err)
	f.clock.Advance(2 * time.Minute)

	_, err = f.uc.Request(3)
	require.NoError(t, err)

	assert.Equal(t, 1, f.uc.Pending())
}
