package reservationstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type recordingObserver struct {
	calls map[string]int
	fails map[string]int
}

func (o *recordingObserver) ObserveStoreCall(operation string, err error) {
	if err != nil {
		o.fails[operation]++
		return
	}
	o.calls[operation]++
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	obs := &recordingObserver{calls: map[string]int{}, fails: map[string]int{}}
	return NewClient(srv.URL+"/api/", 2*time.Second, logger.Nop(), obs), obs
}

func TestGetRoom_ParsesPopulatedRoom(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/3", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("populate"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		_, _ = io.WriteString(w, `{"data":{"id":3,"attributes":{
			"title":"Deluxe","price":120,"size":35,"capacity":2,"description":"Sea view",
			"image":{"data":{"id":9,"attributes":{"url":"/uploads/deluxe.jpg"}}}}}}`)
	})

	room, err := client.GetRoom(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, "Deluxe", room.Title)
	assert.Equal(t, 120.0, room.Price)
	assert.Equal(t, 2, room.Capacity)
	require.NotNil(t, room.Image)
	assert.Equal(t, "/uploads/deluxe.jpg", room.Image.URL)
	assert.Equal(t, 1, obs.calls["get_room"])
}

func TestGetRoom_WithoutImage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"id":3,"attributes":{"title":"Basic","image":{"data":null}}}}`)
	})

	room, err := client.GetRoom(context.Background(), 3)

	require.NoError(t, err)
	assert.False(t, room.HasImage())
}

func TestGetRoom_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"404 status", http.StatusNotFound, `{"data":null,"error":{"status":404,"name":"NotFoundError","message":"Not Found"}}`},
		{"null data", http.StatusOK, `{"data":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.payload)
			})

			_, err := client.GetRoom(context.Background(), 404)

			assert.ErrorIs(t, err, ErrRoomNotFound)
			assert.Equal(t, 1, obs.fails["get_room"])
		})
	}
}

func TestListReservations_SkipsMalformedEntries(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations", r.URL.Path)
		_, _ = io.WriteString(w, `{"data":[
			{"id":1,"attributes":{"firstname":"Ann","lastname":"Lee","email":"ann@example.com",
				"checkIn":"2024-06-10","checkOut":"2024-06-15","room":{"data":{"id":3,"attributes":{"title":"Deluxe"}}}}},
			{"id":2,"attributes":{"checkIn":"2024-06-10","checkOut":"2024-06-15","room":{"data":null}}},
			{"id":3,"attributes":{"checkIn":"10.06.2024","checkOut":"2024-06-15","room":{"data":{"id":3}}}}
		]}`)
	})

	got, err := client.ListReservations(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[0].RoomID)
	assert.Equal(t, "2024-06-10", domain.FormatDay(got[0].CheckIn))
	assert.Equal(t, "2024-06-15", domain.FormatDay(got[0].CheckOut))
}

func TestCreateReservation_SendsStrapiPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations", r.URL.Path)

		var body map[string]map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"firstname": "Ann",
			"lastname":  "Lee",
			"email":     "ann@example.com",
			"checkIn":   "2024-06-15",
			"checkOut":  "2024-06-20",
			"room":      float64(3),
		}, body["data"])

		_, _ = io.WriteString(w, `{"data":{"id":77,"attributes":{"firstname":"Ann","lastname":"Lee","email":"ann@example.com",
			"checkIn":"2024-06-15","checkOut":"2024-06-20","room":{"data":{"id":3}}}}}`)
	})

	created, err := client.CreateReservation(context.Background(), &domain.NewReservation{
		RoomID:    3,
		CheckIn:   time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)
}

func TestCreateReservation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"overlap", http.StatusConflict, ErrOverlap},
		{"rejected", http.StatusBadRequest, ErrRejected},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.CreateReservation(context.Background(), &domain.NewReservation{
				RoomID: 3, CheckIn: time.Now(), CheckOut: time.Now().AddDate(0, 0, 1),
				FirstName: "Ann", LastName: "Lee", Email: "ann@example.com",
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateReservation_InvalidPayloadNeverSent(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.CreateReservation(context.Background(), &domain.NewReservation{
		RoomID: 3, CheckIn: time.Now(), CheckOut: time.Now().AddDate(0, 0, 1),
		FirstName: "Ann", LastName: "Lee", Email: "not-an-email",
	})

	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.False(t, called)
}

func TestDeleteReservation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/reservations/42" {
			_, _ = io.WriteString(w, `{"data":{"id":42,"attributes":{}}}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, client.DeleteReservation(context.Background(), 42))
	assert.ErrorIs(t, client.DeleteReservation(context.Background(), 43), ErrReservationNotFound)
}

func TestClient_NetworkFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/api", 200*time.Millisecond, logger.Nop(), nil)

	err := client.DeleteReservation(context.Background(), 1)

	assert.True(t, errors.Is(err, ErrInternal))
}
