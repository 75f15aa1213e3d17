package sqlite

import (
	"time"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanRecord scans a single record from a database row
func ScanRecord(scanner Scanner) (*Record, error) {
	record := &Record{}
	if err := scanner.Scan(&record.Position, &record.Line); err != nil {
		return nil, err
	}
	return record, nil
}

// ScanRecords scans multiple records from database rows
func ScanRecords(rows Rows) ([]*Record, error) {
	var records []*Record
	for rows.Next() {
		record, err := ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanSaveEntry scans a single save entry. saved_at is stored as RFC 3339
// text.
func ScanSaveEntry(scanner Scanner) (*SaveEntry, error) {
	entry := &SaveEntry{}
	var savedAt string
	if err := scanner.Scan(&entry.ID, &savedAt, &entry.TaskCount); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, err
	}
	entry.SavedAt = t
	return entry, nil
}
