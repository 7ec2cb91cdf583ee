package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) ListByRoomForUpdate(ctx context.Context, roomID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, roomID)
	if res, ok := args.Get(0).([]*domain.Reservation); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.NewReservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if created, ok := args.Get(0).(*domain.Reservation); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if room, ok := args.Get(0).(*domain.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

// retryingTx повторяет fn при конфликте сериализации, как txmanager.Manager
type retryingTx struct {
	attempts int
}

func (tx *retryingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for i := 0; i < 3; i++ {
		tx.attempts++
		err = fn(ctx)
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", txmanager.ErrSerialization, err)
}

func day(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func request(checkIn, checkOut string) *domain.NewReservation {
	return &domain.NewReservation{
		RoomID:    3,
		CheckIn:   day(checkIn),
		CheckOut:  day(checkOut),
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	}
}

type fixture struct {
	uc    *UseCase
	res   *mockReservationRepo
	rooms *mockRoomRepo
	tx    *retryingTx
}

func newFixture() *fixture {
	f := &fixture{res: &mockReservationRepo{}, rooms: &mockRoomRepo{}, tx: &retryingTx{}}
	f.uc = NewUseCase(f.res, f.rooms, f.tx, logger.Nop())
	return f
}

func TestExecute_CreatesWhenFree(t *testing.T) {
	f := newFixture()
	req := request("2024-06-15", "2024-06-20")
	created := &domain.Reservation{ID: 11, RoomID: 3, CheckIn: req.CheckIn, CheckOut: req.CheckOut}

	f.rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	f.res.On("ListByRoomForUpdate", mock.Anything, int64(3)).Return([]*domain.Reservation{
		{ID: 1, RoomID: 3, CheckIn: day("2024-06-10"), CheckOut: day("2024-06-15")},
	}, nil)
	f.res.On("Create", mock.Anything, req).Return(created, nil)

	got, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, created, got)
	f.res.AssertExpectations(t)
}

func TestExecute_RejectsOverlapBeforeInsert(t *testing.T) {
	f := newFixture()
	f.rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	f.res.On("ListByRoomForUpdate", mock.Anything, int64(3)).Return([]*domain.Reservation{
		{ID: 1, RoomID: 3, CheckIn: day("2024-06-10"), CheckOut: day("2024-06-15")},
	}, nil)

	_, err := f.uc.Execute(context.Background(), request("2024-06-05", "2024-06-15"))

	assert.ErrorIs(t, err, ErrOverlap)
	f.res.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_ExclusionConstraintMapsToOverlap(t *testing.T) {
	f := newFixture()
	f.rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	f.res.On("ListByRoomForUpdate", mock.Anything, int64(3)).Return([]*domain.Reservation{}, nil)
	f.res.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: reservations_no_overlap", reservationRepo.ErrOverlap))

	_, err := f.uc.Execute(context.Background(), request("2024-06-15", "2024-06-20"))

	assert.ErrorIs(t, err, ErrOverlap)
}

func TestExecute_RetriesSerializationFailure(t *testing.T) {
	f := newFixture()
	req := request("2024-06-15", "2024-06-20")
	serialization := fmt.Errorf("%w: Create - execute insert: %w", reservationRepo.ErrExecQuery, &pq.Error{Code: "40001"})

	f.rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	f.res.On("ListByRoomForUpdate", mock.Anything, int64(3)).Return([]*domain.Reservation{}, nil)
	f.res.On("Create", mock.Anything, req).Return(nil, serialization).Once()
	f.res.On("Create", mock.Anything, req).Return(&domain.Reservation{ID: 12, RoomID: 3}, nil).Once()

	got, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, 2, f.tx.attempts)
}

func TestExecute_RoomNotFound(t *testing.T) {
	f := newFixture()
	f.rooms.On("GetByID", mock.Anything, int64(3)).Return(nil, roomRepo.ErrRoomNotFound)

	_, err := f.uc.Execute(context.Background(), request("2024-06-15", "2024-06-20"))

	assert.ErrorIs(t, err, ErrRoomNotFound)
	f.res.AssertNotCalled(t, "ListByRoomForUpdate", mock.Anything, mock.Anything)
}

func TestExecute_RepositoryFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.rooms.On("GetByID", mock.Anything, int64(3)).Return(&domain.Room{ID: 3}, nil)
	f.res.On("ListByRoomForUpdate", mock.Anything, int64(3)).Return(nil, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), request("2024-06-15", "2024-06-20"))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.NewReservation)
	}{
		{"no room", func(r *domain.NewReservation) { r.RoomID = 0 }},
		{"no first name", func(r *domain.NewReservation) { r.FirstName = "  " }},
		{"no last name", func(r *domain.NewReservation) { r.LastName = "" }},
		{"bad email", func(r *domain.NewReservation) { r.Email = "ann" }},
		{"same day", func(r *domain.NewReservation) { r.CheckOut = r.CheckIn }},
		{"inverted", func(r *domain.NewReservation) { r.CheckOut = r.CheckIn.AddDate(0, 0, -1) }},
		{"missing date", func(r *domain.NewReservation) { r.CheckIn = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := request("2024-06-15", "2024-06-20")
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.tx.attempts)
		})
	}
}
