package submit_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers/select_dates"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/internal/service/interactions"
	submitBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/async"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type fakeStore struct {
	reservations []*domain.Reservation
	createErr    error
}

func (f *fakeStore) CreateReservation(_ context.Context, r *domain.NewReservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Reservation{ID: 77, RoomID: r.RoomID, CheckIn: r.CheckIn, CheckOut: r.CheckOut}, nil
}

func (f *fakeStore) ListReservations(context.Context) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeStore) GetRoom(_ context.Context, roomID int64) (*domain.Room, error) {
	return &domain.Room{ID: roomID}, nil
}

func (f *fakeStore) LoadSnapshot(context.Context, int64) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fixture struct {
	router *mux.Router
	svc    *interactions.Service
	store  *fakeStore
	group  *async.Group
}

func newFixture(t *testing.T, reservations ...*domain.Reservation) *fixture {
	t.Helper()
	return newModeFixture(t, submitBooking.ModeConfirmed, reservations...)
}

func newModeFixture(t *testing.T, mode submitBooking.Mode, reservations ...*domain.Reservation) *fixture {
	t.Helper()

	store := &fakeStore{reservations: reservations}
	group := async.NewGroup()
	t.Cleanup(group.Close)
	clk := clock.NewFake(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))

	booking := submitBooking.NewUseCase(store, group, clk, nil, submitBooking.Config{Mode: mode}, logger.Nop())
	svc := interactions.NewService(booking, store, store, clk, nil, 0, logger.Nop())
	booking.SetRefresher(svc)

	r := mux.NewRouter()
	r.Use(middleware.Session(middleware.DefaultSessionHeaders))
	r.HandleFunc("/interactions/{interactionId}/dates", select_dates.NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)
	r.HandleFunc("/interactions/{interactionId}/submit", NewHandler(svc, "/login", logger.Nop()).Handle).Methods(http.MethodPost)

	return &fixture{router: r, svc: svc, store: store, group: group}
}

func (f *fixture) open(t *testing.T) string {
	t.Helper()
	id, _, err := f.svc.Open(context.Background(), 3)
	require.NoError(t, err)
	return id
}

func (f *fixture) selectDates(t *testing.T, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/interactions/"+id+"/dates", strings.NewReader(body))
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) submit(t *testing.T, id string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interactions/"+id+"/submit", nil)
	if authenticated {
		req.Header.Set("X-Guest-Email", "ann@example.com")
		req.Header.Set("X-Guest-First-Name", "Ann")
		req.Header.Set("X-Guest-Last-Name", "Lee")
	}
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) SubmitResponse {
	t.Helper()
	var body SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSubmit_UnauthenticatedReturnsLoginURL(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	rec := f.submit(t, id, false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body LoginRequiredResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/login", body.LoginURL)
}

func TestSubmit_UnknownInteraction(t *testing.T) {
	f := newFixture(t)

	rec := f.submit(t, "missing", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmit_SameDayIsInputError(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	require.Equal(t, http.StatusOK, f.selectDates(t, id, `{"checkIn":"2024-06-10","checkOut":"2024-06-10"}`).Code)
	rec := f.submit(t, id, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, string(domain.StateInputError), body.State)
	require.NotNil(t, body.Alert)
	assert.Equal(t, domain.MsgSameDates, body.Alert.Message)
	assert.Equal(t, string(domain.AlertError), body.Alert.Kind)
}

func TestSubmit_ConflictWithSnapshot(t *testing.T) {
	f := newFixture(t, &domain.Reservation{
		ID:       1,
		RoomID:   3,
		CheckIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	id := f.open(t)

	f.selectDates(t, id, `{"checkIn":"2024-06-12","checkOut":"2024-06-14"}`)
	body := decode(t, f.submit(t, id, true))

	assert.Equal(t, string(domain.StateConflict), body.State)
	assert.Equal(t, domain.MsgAlreadyBooked, body.Alert.Message)
}

func TestSubmit_AcceptedThenConfirmed(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	f.selectDates(t, id, `{"checkIn":"2024-06-10","checkOut":"2024-06-12"}`)
	rec := f.submit(t, id, true)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, string(domain.StateSubmitting), decode(t, rec).State)

	f.group.Wait()

	controller, err := f.svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSuccess, controller.Result().State)
	assert.Equal(t, domain.MsgBookingConfirmed, controller.Alert().Message)
}

func TestSubmit_OptimisticReportsSuccessImmediately(t *testing.T) {
	f := newModeFixture(t, submitBooking.ModeOptimistic)
	f.store.createErr = reservationstore.ErrInternal
	id := f.open(t)

	f.selectDates(t, id, `{"checkIn":"2024-06-10","checkOut":"2024-06-12"}`)
	rec := f.submit(t, id, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, string(domain.StateSuccess), body.State)
	require.NotNil(t, body.Alert)
	assert.Equal(t, domain.MsgBookingConfirmed, body.Alert.Message)

	f.group.Wait()
}

func TestSubmit_StoreOverlapBecomesConflictAlert(t *testing.T) {
	f := newFixture(t)
	f.store.createErr = reservationstore.ErrOverlap
	id := f.open(t)

	f.selectDates(t, id, `{"checkIn":"2024-06-10","checkOut":"2024-06-12"}`)
	f.submit(t, id, true)
	f.group.Wait()

	controller, err := f.svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateConflict, controller.Result().State)
}

func TestSelectDates_PastDayRejected(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	rec := f.selectDates(t, id, `{"checkIn":"2024-05-30"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body select_dates.CandidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.CheckIn)
	require.NotNil(t, body.Alert)
	assert.Equal(t, domain.MsgPastDate, body.Alert.Message)
}

func TestSelectDates_MalformedDate(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	assert.Equal(t, http.StatusBadRequest, f.selectDates(t, id, `{"checkIn":"10/06/2024"}`).Code)
}
