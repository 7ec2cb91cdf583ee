package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type stubDB struct {
	DBExecutor
}

func TestGetExecutor_WithoutTransactionReturnsDB(t *testing.T) {
	db := &stubDB{}

	assert.Same(t, db, GetExecutor(context.Background(), db))
	assert.False(t, IsInTransaction(context.Background()))
}

func TestGetExecutor_WithTransactionReturnsTx(t *testing.T) {
	tx := &sql.Tx{}
	ctx := withTx(context.Background(), tx)

	assert.Same(t, tx, GetExecutor(ctx, &stubDB{}))
	assert.True(t, IsInTransaction(ctx))
}

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}
	exclusion := &pq.Error{Code: "23P01"}

	assert.True(t, IsSerializationFailure(serialization))
	assert.True(t, IsSerializationFailure(fmt.Errorf("wrapped: %w", serialization)))
	assert.False(t, IsSerializationFailure(exclusion))
	assert.False(t, IsSerializationFailure(errors.New("plain")))
	assert.False(t, IsSerializationFailure(nil))
}

func TestRun_NestedCallReusesTransaction(t *testing.T) {
	m := NewTransactionManager(nil, 3)
	ctx := withTx(context.Background(), &sql.Tx{})

	called := false
	err := m.DoSerializable(ctx, func(inner context.Context) error {
		called = true
		assert.True(t, IsInTransaction(inner))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}
