package schema

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

//go:embed sql/*.sql
var files embed.FS

// seedPrefix файлы с демо-данными, применяются только по запросу
const seedPrefix = "seed"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Files возвращает имена встроенных файлов схемы в порядке применения
func Files(withSeed bool) ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("schema: read embedded files: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !withSeed && strings.Contains(name, seedPrefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Apply выполняет встроенные SQL файлы по порядку. Все файлы идемпотентны.
func Apply(ctx context.Context, db txmanager.DBExecutor, withSeed bool, log Logger) error {
	names, err := Files(withSeed)
	if err != nil {
		return err
	}

	for _, name := range names {
		body, err := files.ReadFile("sql/" + name)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("schema: apply %s: %w", name, err)
		}
		log.Info("Schema file %s applied", name)
	}

	return nil
}
