package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
)

// UseCase use case для создания бронирования на стороне хранилища
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute создает бронирование атомарно: проверка пересечений и вставка
// выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *domain.NewReservation) (*domain.Reservation, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: room=%d, range=%s..%s",
		req.RoomID, domain.FormatDay(req.CheckIn), domain.FormatDay(req.CheckOut))

	var result *domain.Reservation

	// 2. Проверка и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Комната должна существовать
		if _, err := uc.roomRepo.GetByID(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 2.2. Бронирования комнаты с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.ListByRoomForUpdate(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to list reservations: %w", ErrInternal, err)
		}

		// 2.3. Проверка пересечений по тому же правилу, что и у движка
		if conflicts := availability.Conflicts(existing, req.RoomID, req.CheckIn, req.CheckOut); len(conflicts) > 0 {
			uc.logger.Warn("CreateReservation: room id=%d, range overlaps reservation id=%d (%d conflicts)",
				req.RoomID, conflicts[0].ID, len(conflicts))
			return ErrOverlap
		}

		// 2.4. Вставка. Ограничение исключения в схеме - последний рубеж.
		// Ошибка драйвера сохраняется в цепочке (%w) для повтора при 40001.
		created, err := uc.reservationRepo.Create(txCtx, req)
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrOverlap):
				uc.logger.Warn("CreateReservation: room id=%d, rejected by exclusion constraint", req.RoomID)
				return ErrOverlap
			case errors.Is(err, reservationRepo.ErrRoomNotFound):
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverlap) || errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		// ошибки транзакции (begin/commit/повторы сериализации)
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	return result, nil
}
