package interactions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-RoomBooking/internal/service/roompage"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/clock"
)

type entry struct {
	controller *submit_booking.Controller
	lastSeen   time.Time
}

// Service реестр открытых взаимодействий бронирования
type Service struct {
	booking BookingUseCase
	loader  SnapshotLoader
	reader  StoreReader
	clock   clock.Clock
	metrics Metrics
	idleTTL time.Duration
	logger  Logger

	mu    sync.Mutex
	items map[string]*entry
}

// NewService создает новый реестр. idleTTL <= 0 отключает закрытие по простою.
func NewService(
	booking BookingUseCase,
	loader SnapshotLoader,
	reader StoreReader,
	clk clock.Clock,
	metrics Metrics,
	idleTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		booking: booking,
		loader:  loader,
		reader:  reader,
		clock:   clk,
		metrics: metrics,
		idleTTL: idleTTL,
		logger:  logger,
		items:   make(map[string]*entry),
	}
}

// Open открывает взаимодействие для комнаты и возвращает его ID
func (s *Service) Open(ctx context.Context, roomID int64) (string, *submit_booking.Controller, error) {
	snapshot, err := s.loader.LoadSnapshot(ctx, roomID)
	if err != nil {
		if errors.Is(err, roompage.ErrRoomNotFound) {
			s.logger.Warn("Open: room id=%d not found", roomID)
			return "", nil, ErrRoomNotFound
		}
		s.logger.Error("Open: failed to load snapshot for room id=%d: %v", roomID, err)
		return "", nil, fmt.Errorf("%w: Open - snapshot: %v", ErrInternal, err)
	}

	id := uuid.NewString()
	controller := s.booking.Start(roomID, snapshot)

	s.mu.Lock()
	s.items[id] = &entry{controller: controller, lastSeen: s.clock.Now()}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.InteractionOpened()
	}

	s.logger.Info("Open: interaction id=%s opened for room id=%d", id, roomID)
	return id, controller, nil
}

// Get возвращает взаимодействие по ID и продлевает его жизнь
func (s *Service) Get(id string) (*submit_booking.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return nil, ErrInteractionNotFound
	}
	e.lastSeen = s.clock.Now()
	return e.controller, nil
}

// Close закрывает взаимодействие и отменяет его отложенные таймеры
func (s *Service) Close(id string) error {
	s.mu.Lock()
	e, ok := s.items[id]
	if ok {
		delete(s.items, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrInteractionNotFound
	}

	s.dispose(e)
	s.logger.Info("Close: interaction id=%s closed", id)
	return nil
}

// Refresh перечитывает комнаты открытых взаимодействий и бронирования
// и обновляет снимки всех взаимодействий. Взаимодействия удаленных комнат закрываются.
func (s *Service) Refresh(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)

	var reservations []*domain.Reservation
	g.Go(func() error {
		var err error
		reservations, err = s.reader.ListReservations(gctx)
		return err
	})

	rooms := s.openRooms()
	gone := make([]bool, len(rooms))
	for i, roomID := range rooms {
		i, roomID := i, roomID
		g.Go(func() error {
			_, err := s.reader.GetRoom(gctx, roomID)
			switch {
			case errors.Is(err, reservationstore.ErrRoomNotFound):
				gone[i] = true
			case err != nil:
				s.logger.Warn("Refresh: failed to get room id=%d: %v", roomID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Refresh: failed to list reservations: %v", err)
		return
	}

	for i, roomID := range rooms {
		if gone[i] {
			s.closeRoom(roomID)
		}
	}

	for _, c := range s.controllers() {
		c.SetSnapshot(reservations)
	}
}

// Sweep закрывает взаимодействия, простаивающие дольше idleTTL.
// Возвращает число закрытых.
func (s *Service) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}

	now := s.clock.Now()
	expired := make([]*entry, 0)

	s.mu.Lock()
	for id, e := range s.items {
		if now.Sub(e.lastSeen) >= s.idleTTL {
			expired = append(expired, e)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	for _, e := range expired {
		s.dispose(e)
	}

	if len(expired) > 0 {
		s.logger.Info("Sweep: closed %d idle interactions", len(expired))
	}
	return len(expired)
}

// RunSweeper периодически закрывает простаивающие взаимодействия до отмены ctx
func (s *Service) RunSweeper(ctx context.Context, every time.Duration) {
	if s.idleTTL <= 0 || every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// CloseAll закрывает все взаимодействия (при остановке сервиса)
func (s *Service) CloseAll() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range items {
		s.dispose(e)
	}
}

// Len возвращает число открытых взаимодействий
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Service) controllers() []*submit_booking.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*submit_booking.Controller, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e.controller)
	}
	return out
}

func (s *Service) openRooms() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(s.items))
	rooms := make([]int64, 0, len(s.items))
	for _, e := range s.items {
		roomID := e.controller.RoomID()
		if _, ok := seen[roomID]; ok {
			continue
		}
		seen[roomID] = struct{}{}
		rooms = append(rooms, roomID)
	}
	return rooms
}

func (s *Service) closeRoom(roomID int64) {
	closed := make([]*entry, 0)

	s.mu.Lock()
	for id, e := range s.items {
		if e.controller.RoomID() == roomID {
			closed = append(closed, e)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	for _, e := range closed {
		s.dispose(e)
	}
	s.logger.Warn("Refresh: room id=%d no longer exists, closed %d interactions", roomID, len(closed))
}

func (s *Service) dispose(e *entry) {
	e.controller.Dispose()
	if s.metrics != nil {
		s.metrics.InteractionClosed()
	}
}
