package reservationstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает результат каждого вызова хранилища (метрики). Может быть nil.
type Observer interface {
	ObserveStoreCall(operation string, err error)
}

// Client клиент REST API хранилища бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   Observer
}

// NewClient создает новый экземпляр клиента хранилища.
// baseURL указывает на корень API, например "http://localhost:1337/api"
func NewClient(baseURL string, timeout time.Duration, log Logger, observer Observer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: observer,
	}
}

// GetRoom получает комнату вместе с изображением
// GET /rooms/{id}?populate=*
func (c *Client) GetRoom(ctx context.Context, roomID int64) (room *domain.Room, err error) {
	defer func() { c.observe("get_room", err) }()

	url := fmt.Sprintf("%s/rooms/%d?populate=*", c.baseURL, roomID)

	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var body RoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode room: %v", ErrInvalidResponse, err)
	}

	// Strapi может вернуть 200 с data = null
	if body.Data == nil {
		return nil, ErrRoomNotFound
	}

	return ToDomainRoom(body.Data)
}

// ListReservations получает все бронирования со связанными комнатами
// GET /reservations?populate=*
// Записи с некорректной структурой пропускаются с предупреждением.
func (c *Client) ListReservations(ctx context.Context) (reservations []*domain.Reservation, err error) {
	defer func() { c.observe("list_reservations", err) }()

	url := fmt.Sprintf("%s/reservations?populate=*", c.baseURL)

	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var body ReservationListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reservations: %v", ErrInvalidResponse, err)
	}

	reservations = make([]*domain.Reservation, 0, len(body.Data))
	for _, item := range body.Data {
		r, err := ToDomainReservation(item)
		if err != nil {
			c.log.Warn("ListReservations: skipping malformed reservation: %v", err)
			continue
		}
		reservations = append(reservations, r)
	}

	return reservations, nil
}

// CreateReservation создает бронирование
// POST /reservations
func (c *Client) CreateReservation(ctx context.Context, r *domain.NewReservation) (created *domain.Reservation, err error) {
	defer func() { c.observe("create_reservation", err) }()

	payload, err := NewCreateRequest(r)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/reservations", raw)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, ErrOverlap
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrRejected, string(body))
	default:
		return nil, unexpectedStatus(resp)
	}

	var body ReservationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode created reservation: %v", ErrInvalidResponse, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("%w: empty created reservation", ErrInvalidResponse)
	}

	return ToDomainReservation(*body.Data)
}

// DeleteReservation удаляет бронирование
// DELETE /reservations/{id}
func (c *Client) DeleteReservation(ctx context.Context, reservationID int64) (err error) {
	defer func() { c.observe("delete_reservation", err) }()

	url := fmt.Sprintf("%s/reservations/%d", c.baseURL, reservationID)

	resp, err := c.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrReservationNotFound
	default:
		return unexpectedStatus(resp)
	}
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

func (c *Client) observe(operation string, err error) {
	if c.observer != nil {
		c.observer.ObserveStoreCall(operation, err)
	}
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
