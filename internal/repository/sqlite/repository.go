package sqlite

import (
	"context"
	"database/sql"
	"time"

	"monet/internal/codec"
	"monet/internal/domain"
	"monet/internal/errors"
	"monet/internal/logging"
	"monet/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository stores one codec record per row, so a database holds exactly what
// the flat file would and decodes with the same corruption rules.
type Repository struct {
	db   *sql.DB
	warn func(line string)
}

// Option configures a Repository.
type Option func(*Repository)

// WithWarn sets the callback for corrupted records skipped by Load.
func WithWarn(warn func(line string)) Option {
	return func(r *Repository) {
		r.warn = warn
	}
}

// New opens the database at dbPath and brings its schema up to date.
func New(dbPath string, opts ...Option) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewIOError("open database", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewIOError("run migrations", err)
	}

	r := &Repository{db: db}
	for _, opt := range opts {
		opt(r)
	}
	if logging.DebugEnabled() {
		if versions, err := migrations.AppliedVersions(db); err == nil {
			logging.Debugln("opened sqlite store at", dbPath, "schema versions", versions)
		}
	}
	return r, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load decodes every stored record in position order. When fewer tasks
// decode than the last save wrote, the shortfall is reported as a warning.
func (r *Repository) Load(ctx context.Context) ([]domain.Task, error) {
	records, err := r.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.Line)
	}
	tasks, err := codec.DecodeLines(lines, r.warn)
	if err != nil {
		return nil, err
	}

	last, err := r.LastSave(ctx)
	if err != nil {
		return nil, err
	}
	if last != nil {
		logging.Debugf("last save %s wrote %d tasks\n", last.SavedAt.Format(time.RFC3339), last.TaskCount)
		if len(tasks) < last.TaskCount {
			logging.Warnf("%d of %d saved tasks could not be read", last.TaskCount-len(tasks), last.TaskCount)
		}
	}
	return tasks, nil
}

// Save replaces all records with tasks in a single transaction and logs the
// save.
func (r *Repository) Save(ctx context.Context, tasks []domain.Task) error {
	lines := codec.EncodeAll(tasks)

	return WithTransaction(ctx, r.db, "save tasks", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (position, line) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, line := range lines {
			if _, err := stmt.ExecContext(ctx, i, line); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO saves (saved_at, task_count) VALUES (?, ?)`,
			time.Now().UTC().Format(time.RFC3339Nano), len(lines))
		return err
	})
}

// ListRecords returns the raw stored records in position order.
func (r *Repository) ListRecords(ctx context.Context) ([]*Record, error) {
	query := `
	SELECT position, line
	FROM records
	ORDER BY position ASC`

	return QueryMultiple(ctx, r.db, query, ScanRecords, "records")
}

// LastSave returns the most recent save, or nil when nothing has been saved.
func (r *Repository) LastSave(ctx context.Context) (*SaveEntry, error) {
	query := `
	SELECT id, saved_at, task_count
	FROM saves
	ORDER BY id DESC
	LIMIT 1`

	return QuerySingle(ctx, r.db, query, ScanSaveEntry, "save")
}
