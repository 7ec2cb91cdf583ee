package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/store/models"
)

// Service сервис чтения и удаления записей хранилища
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса хранилища
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// GetRoom получает комнату по ID
func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}

	return room, nil
}

// ListReservations получает все бронирования вместе с комнатами
func (s *Service) ListReservations(ctx context.Context) ([]models.ReservationWithRoom, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	rooms, err := s.roomRepo.GetByIDs(ctx, roomIDs(reservations))
	if err != nil {
		s.logger.Error("ListReservations: failed to load rooms: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - rooms: %v", ErrInternal, err)
	}

	result := make([]models.ReservationWithRoom, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, models.ReservationWithRoom{Reservation: r, Room: rooms[r.RoomID]})
	}

	s.logger.Info("ListReservations: fetched %d reservations", len(result))
	return result, nil
}

// DeleteReservation удаляет бронирование и возвращает удаленную запись
func (s *Service) DeleteReservation(ctx context.Context, id int64) (*models.ReservationWithRoom, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	deleted, err := s.reservationRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("DeleteReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("DeleteReservation: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: DeleteReservation - repository error: %v", ErrInternal, err)
	}

	// комната нужна только для ответа, ее отсутствие не ошибка
	room, err := s.roomRepo.GetByID(ctx, deleted.RoomID)
	if err != nil && !errors.Is(err, roomRepo.ErrRoomNotFound) {
		s.logger.Warn("DeleteReservation: failed to load room id=%d: %v", deleted.RoomID, err)
	}

	s.logger.Info("DeleteReservation: successfully deleted reservation id=%d", id)
	return &models.ReservationWithRoom{Reservation: deleted, Room: room}, nil
}

func roomIDs(reservations []*domain.Reservation) []int64 {
	seen := make(map[int64]struct{}, len(reservations))
	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		if _, ok := seen[r.RoomID]; ok {
			continue
		}
		seen[r.RoomID] = struct{}{}
		ids = append(ids, r.RoomID)
	}
	return ids
}
