package roompage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type fakeStore struct {
	room         *domain.Room
	roomErr      error
	reservations []*domain.Reservation
	listErr      error
}

func (f *fakeStore) GetRoom(context.Context, int64) (*domain.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeStore) ListReservations(context.Context) ([]*domain.Reservation, error) {
	return f.reservations, f.listErr
}

func day(s string) time.Time {
	d, _ := domain.ParseDay(s)
	return d
}

func TestGetPage_FiltersAndSortsRoomReservations(t *testing.T) {
	store := &fakeStore{
		room: &domain.Room{ID: 3, Title: "Deluxe", Image: &domain.Image{URL: "/uploads/deluxe.jpg"}},
		reservations: []*domain.Reservation{
			{ID: 1, RoomID: 3, CheckIn: day("2024-06-20"), CheckOut: day("2024-06-22")},
			{ID: 2, RoomID: 5, CheckIn: day("2024-06-01"), CheckOut: day("2024-06-02")},
			{ID: 3, RoomID: 3, CheckIn: day("2024-06-10"), CheckOut: day("2024-06-15")},
		},
	}
	svc := NewService(store, "http://localhost:1337/", "/static/no-image.png", logger.Nop())

	page, err := svc.GetPage(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Deluxe", page.Room.Title)
	assert.Equal(t, "http://localhost:1337/uploads/deluxe.jpg", page.ImageURL)
	require.Len(t, page.Reservations, 2)
	assert.Equal(t, int64(3), page.Reservations[0].ID)
	assert.Equal(t, int64(1), page.Reservations[1].ID)
	assert.Len(t, page.Snapshot, 3)
}

func TestGetPage_RoomNotFound(t *testing.T) {
	svc := NewService(&fakeStore{roomErr: reservationstore.ErrRoomNotFound}, "", "", logger.Nop())

	_, err := svc.GetPage(context.Background(), 404)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetPage_StoreFailureIsInternal(t *testing.T) {
	svc := NewService(&fakeStore{room: &domain.Room{ID: 3}, listErr: errors.New("dial tcp: refused")}, "", "", logger.Nop())

	_, err := svc.GetPage(context.Background(), 3)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetPage_InvalidID(t *testing.T) {
	svc := NewService(&fakeStore{}, "", "", logger.Nop())

	_, err := svc.GetPage(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestImageURL(t *testing.T) {
	svc := NewService(&fakeStore{}, "https://cms.example.com", "/static/no-image.png", logger.Nop())

	assert.Equal(t, "/static/no-image.png", svc.ImageURL(&domain.Room{ID: 1}))
	assert.Equal(t, "/static/no-image.png", svc.ImageURL(nil))
	assert.Equal(t, "https://cdn.example.com/a.jpg", svc.ImageURL(&domain.Room{Image: &domain.Image{URL: "https://cdn.example.com/a.jpg"}}))
	assert.Equal(t, "https://cms.example.com/uploads/a.jpg", svc.ImageURL(&domain.Room{Image: &domain.Image{URL: "uploads/a.jpg"}}))
}

func TestLoadSnapshot(t *testing.T) {
	store := &fakeStore{
		room:         &domain.Room{ID: 3},
		reservations: []*domain.Reservation{{ID: 1, RoomID: 5}},
	}
	svc := NewService(store, "", "", logger.Nop())

	snapshot, err := svc.LoadSnapshot(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
}
