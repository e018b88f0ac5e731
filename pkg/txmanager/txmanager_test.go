package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbook/FieldBooking-Service/pkg/dbmetrics"
)

// errExecQuery повторяет стиль обёртки ошибок в слое хранилища
var errExecQuery = errors.New("storage: failed to execute query")

type fakeTx struct {
	commitErr error
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	err := t.commitErr
	t.commitErr = nil
	return err
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	begins int
	tx     *fakeTx
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func serializationFailure() *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(pgSerializationFailure)}
}

func TestDoSerializableRetriesWrappedDriverConflict(t *testing.T) {
	// Репозиторий оборачивает ошибку драйвера сентинелом; код 40001
	// обязан оставаться различимым сквозь обёртку
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewWithBeginner(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("%w: ListByField - execute query: %w", errExecQuery, serializationFailure())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts, "conflicting attempts are retried")
	assert.Equal(t, 3, beginner.begins, "every attempt runs in a fresh transaction")
	assert.Equal(t, 2, beginner.tx.rollbacks)
}

func TestDoSerializableRetriesCommitConflict(t *testing.T) {
	// При SERIALIZABLE конфликт SSI может проявиться только на COMMIT
	beginner := &fakeBeginner{tx: &fakeTx{commitErr: serializationFailure()}}
	m := NewWithBeginner(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begins, "commit conflict triggers a retry")
}

func TestDoSerializableDoesNotRetryBusinessError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewWithBeginner(beginner)

	errSlotConflict := errors.New("slot is already booked")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return errSlotConflict
	})

	assert.ErrorIs(t, err, errSlotConflict)
	assert.Equal(t, 1, attempts, "business errors are returned as is")
	assert.Equal(t, 1, beginner.begins)
}

func TestDoSerializableGivesUpAfterRetries(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewWithBeginner(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("%w: ListByField - execute query: %w", errExecQuery, serializationFailure())
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errExecQuery)
	assert.Equal(t, serializableRetries+1, attempts)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "raw serialization failure", err: serializationFailure(), want: true},
		{name: "raw deadlock", err: &pq.Error{Code: pq.ErrorCode(pgDeadlockDetected)}, want: true},
		{
			name: "serialization failure wrapped by repository",
			err:  fmt.Errorf("%w: ListByField - execute query: %w", errExecQuery, serializationFailure()),
			want: true,
		},
		{
			name: "serialization failure wrapped on commit",
			err:  fmt.Errorf("%w: %w", ErrCommitTx, serializationFailure()),
			want: true,
		},
		{
			name: "double wrap through usecase and repository",
			err: fmt.Errorf("%w: failed to list bookings: %w", errors.New("usecase: internal error"),
				fmt.Errorf("%w: ListByField - execute query: %w", errExecQuery, serializationFailure())),
			want: true,
		},
		{name: "other sqlstate", err: &pq.Error{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestRunReusesActiveTransaction(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	m := NewWithBeginner(beginner)

	err := m.Do(context.Background(), func(outerCtx context.Context) error {
		// Вложенный вызов не должен открывать вторую транзакцию
		return m.Do(outerCtx, func(ctx context.Context) error {
			require.True(t, dbmetrics.IsInTransaction(ctx))
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.begins)
	assert.Equal(t, 1, beginner.tx.commits)
}
