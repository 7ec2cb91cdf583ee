package schema

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type recordingExecutor struct {
	queries []string
	err     error
}

func (r *recordingExecutor) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return nil, r.err
}

func (r *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (r *recordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestFiles(t *testing.T) {
	names, err := Files(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql"}, names)

	names, err = Files(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_seed_rooms.sql"}, names)
}

func TestApply_CarriesOverlapConstraint(t *testing.T) {
	exec := &recordingExecutor{}

	require.NoError(t, Apply(context.Background(), exec, false, logger.Nop()))

	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "EXCLUDE USING gist (room_id WITH =, daterange(check_in, check_out, '[)') WITH &&)")
	assert.Contains(t, exec.queries[0], "CHECK (check_in < check_out)")
}

func TestApply_StopsOnError(t *testing.T) {
	exec := &recordingExecutor{err: errors.New("permission denied")}

	err := Apply(context.Background(), exec, true, logger.Nop())

	assert.ErrorContains(t, err, "001_init.sql")
	assert.Len(t, exec.queries, 1)
}
