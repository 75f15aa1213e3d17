package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *int:
			*v = ts.data[i].(int)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface for testing
type TestRows struct {
	rows    [][]interface{}
	current int
	err     error
}

func (tr *TestRows) Next() bool {
	tr.current++
	return tr.current <= len(tr.rows)
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return (&TestScanner{data: tr.rows[tr.current-1]}).Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanRecord(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Record
		expectError bool
	}{
		{
			name:     "Valid record",
			scanner:  &TestScanner{data: []interface{}{int64(2), "T | 0 | LOW | read"}},
			expected: &Record{Position: 2, Line: "T | 0 | LOW | read"},
		},
		{
			name:        "Scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanRecord(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanRecords(t *testing.T) {
	rows := &TestRows{rows: [][]interface{}{
		{int64(0), "first"},
		{int64(1), "second"},
	}}

	records, err := ScanRecords(rows)

	assert.NoError(t, err)
	assert.Equal(t, []*Record{{Position: 0, Line: "first"}, {Position: 1, Line: "second"}}, records)
}

func TestScanRecords_RowsError(t *testing.T) {
	rows := &TestRows{err: errors.New("iteration failed")}

	records, err := ScanRecords(rows)

	assert.EqualError(t, err, "iteration failed")
	assert.Nil(t, records)
}

func TestScanSaveEntry(t *testing.T) {
	entry, err := ScanSaveEntry(&TestScanner{data: []interface{}{int64(7), "2025-09-01T08:30:00Z", 4}})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
	assert.Equal(t, 4, entry.TaskCount)
	assert.True(t, time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC).Equal(entry.SavedAt))

	_, err = ScanSaveEntry(&TestScanner{data: []interface{}{int64(7), "yesterday", 4}})
	assert.Error(t, err)
}
