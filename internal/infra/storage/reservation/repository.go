package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

var columns = []string{"id", "room_id", "check_in", "check_out", "firstname", "lastname", "email"}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Пересечение с существующим диапазоном отклоняется ограничением исключения (ErrOverlap).
func (r *Repository) Create(ctx context.Context, res *domain.NewReservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("room_id", "check_in", "check_out", "firstname", "lastname", "email").
		Values(
			res.RoomID,
			domain.FormatDay(res.CheckIn),
			domain.FormatDay(res.CheckOut),
			res.FirstName,
			res.LastName,
			res.Email,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return &domain.Reservation{
		ID:        id,
		RoomID:    res.RoomID,
		CheckIn:   domain.StartOfDay(res.CheckIn),
		CheckOut:  domain.StartOfDay(res.CheckOut),
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Email:     res.Email,
	}, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает все бронирования, упорядоченные по комнате и дате заезда
func (r *Repository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		OrderBy("room_id", "check_in", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListByRoomForUpdate получает бронирования комнаты с блокировкой строк (FOR UPDATE).
// Вызывается внутри транзакции перед проверкой пересечений.
func (r *Repository) ListByRoomForUpdate(ctx context.Context, roomID int64) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("check_in").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByRoomForUpdate", query, args)
}

// Delete удаляет бронирование и возвращает удаленную запись
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, room_id, check_in, check_out, firstname, lastname, email").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return res, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}

	return reservations, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.CheckIn,
		&res.CheckOut,
		&res.FirstName,
		&res.LastName,
		&res.Email,
	); err != nil {
		return nil, err
	}

	// date приходит как полночь UTC
	res.CheckIn = domain.StartOfDay(res.CheckIn.UTC())
	res.CheckOut = domain.StartOfDay(res.CheckOut.UTC())

	return &res, nil
}

// mapConstraintError переводит нарушения ограничений PostgreSQL в ошибки репозитория
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case pgExclusionViolation:
		return fmt.Errorf("%w: %s", ErrOverlap, pqErr.Constraint)
	case pgForeignKeyViolation:
		return ErrRoomNotFound
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", ErrExecQuery, pqErr.Message)
	default:
		return nil
	}
}
