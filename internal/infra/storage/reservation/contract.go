package reservation

import "github.com/m04kA/SMC-RoomBooking/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor

// Коды ошибок PostgreSQL, которые репозиторий переводит в доменные ошибки
const (
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)
