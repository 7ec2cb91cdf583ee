package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

var columns = []string{"id", "title", "price", "size", "capacity", "description", "image_url"}

// Repository репозиторий для чтения комнат. Комнаты только читаются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// GetByIDs получает комнаты по списку ID. Отсутствующие ID пропускаются.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Room, error) {
	result := make(map[int64]*domain.Room, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan room: %v", ErrScanRow, err)
		}
		result[room.ID] = room
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row scanner) (*domain.Room, error) {
	var room domain.Room
	var imageURL sql.NullString

	if err := row.Scan(
		&room.ID,
		&room.Title,
		&room.Price,
		&room.Size,
		&room.Capacity,
		&room.Description,
		&imageURL,
	); err != nil {
		return nil, err
	}

	if imageURL.Valid && imageURL.String != "" {
		room.Image = &domain.Image{URL: imageURL.String}
	}

	return &room, nil
}
