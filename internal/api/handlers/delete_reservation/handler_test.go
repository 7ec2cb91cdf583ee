package delete_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/internal/service/store"
	"github.com/m04kA/SMC-RoomBooking/internal/service/store/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type fakeService struct {
	deleted *models.ReservationWithRoom
	err     error
}

func (f *fakeService) DeleteReservation(context.Context, int64) (*models.ReservationWithRoom, error) {
	return f.deleted, f.err
}

func serve(svc StoreService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/reservations/{id}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandle_ReturnsDeletedRecord(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	svc := &fakeService{deleted: &models.ReservationWithRoom{
		Reservation: &domain.Reservation{ID: 42, RoomID: 3, CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2), Email: "ann@example.com"},
		Room:        &domain.Room{ID: 3, Title: "Deluxe"},
	}}

	rec := serve(svc, "/api/reservations/42")

	require.Equal(t, http.StatusOK, rec.Code)
	var body reservationstore.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)

	got, err := reservationstore.ToDomainReservation(*body.Data)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "Deluxe", body.Data.Attributes.Room.Data.Attributes.Title)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(&fakeService{err: store.ErrReservationNotFound}, "/api/reservations/43")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body reservationstore.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Error.Status)
}

func TestHandle_InvalidID(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/reservations/abc").Code)
}
