package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "monet/internal/errors"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeIO))
}

func TestWithTransaction(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	err := WithTransaction(ctx, repo.db, "insert", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO records (position, line) VALUES (0, 'kept')`)
		return err
	})
	require.NoError(t, err)

	failure := errors.New("boom")
	err = WithTransaction(ctx, repo.db, "insert", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO records (position, line) VALUES (1, 'discarded')`); err != nil {
			return err
		}
		return failure
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeIO))

	records, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Line)
}

func TestQuerySingle_NoRows(t *testing.T) {
	repo := setupTestDB(t)

	record, err := QuerySingle(context.Background(), repo.db,
		`SELECT position, line FROM records WHERE position = ?`, ScanRecord, "record", 42)

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestQueryMultiple_BadQuery(t *testing.T) {
	repo := setupTestDB(t)

	_, err := QueryMultiple(context.Background(), repo.db, `SELECT nope FROM missing`, ScanRecords, "records")

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeIO))
}
