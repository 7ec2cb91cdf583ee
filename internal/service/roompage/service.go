package roompage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/reservationstore"
)

// Service загружает страницу комнаты: комнату и снимок бронирований
type Service struct {
	store         ReservationStore
	publicURL     string
	fallbackImage string
	logger        Logger
}

// NewService создает новый экземпляр сервиса.
// publicURL - адрес, от которого отсчитываются относительные пути изображений.
// fallbackImage - изображение для комнат без картинки.
func NewService(store ReservationStore, publicURL, fallbackImage string, logger Logger) *Service {
	return &Service{
		store:         store,
		publicURL:     strings.TrimRight(publicURL, "/"),
		fallbackImage: fallbackImage,
		logger:        logger,
	}
}

// GetPage загружает комнату и бронирования параллельно
func (s *Service) GetPage(ctx context.Context, roomID int64) (*Page, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetPage: loading room id=%d", roomID)

	var (
		room     *domain.Room
		snapshot []*domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		room, err = s.store.GetRoom(gctx, roomID)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot, err = s.store.ListReservations(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, reservationstore.ErrRoomNotFound) {
			s.logger.Warn("GetPage: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetPage: failed to load room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetPage - store error: %v", ErrInternal, err)
	}

	page := &Page{
		Room:         room,
		ImageURL:     s.ImageURL(room),
		Reservations: forRoom(snapshot, roomID),
		Snapshot:     snapshot,
	}

	s.logger.Info("GetPage: room id=%d loaded with %d reservations", roomID, len(page.Reservations))
	return page, nil
}

// LoadSnapshot загружает снимок бронирований для новой сессии бронирования.
// Отсутствующая комната возвращает ErrRoomNotFound.
func (s *Service) LoadSnapshot(ctx context.Context, roomID int64) ([]*domain.Reservation, error) {
	page, err := s.GetPage(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return page.Snapshot, nil
}

// ImageURL возвращает абсолютный адрес изображения комнаты
func (s *Service) ImageURL(room *domain.Room) string {
	if room == nil || !room.HasImage() {
		return s.fallbackImage
	}

	url := room.Image.URL
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return s.publicURL + url
}

func forRoom(snapshot []*domain.Reservation, roomID int64) []*domain.Reservation {
	out := make([]*domain.Reservation, 0)
	for _, r := range snapshot {
		if r != nil && r.RoomID == roomID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CheckIn.Before(out[j].CheckIn)
	})
	return out
}
