package sqlite

import (
	"context"
	"database/sql"
	"time"

	"taskboard/internal/errors"
	"taskboard/internal/repository"
	"taskboard/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options bounds individual statements. Zero values mean no limit.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements repository.Repository on a single kv_store table
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// New creates a new SQLite repository instance without statement timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens dbPath (":memory:" for a throwaway store) and runs migrations
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// One connection keeps ":memory:" databases from splitting across the pool.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := r.GetEntry(ctx, key)
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

// GetEntry returns the full row for key, including when it was last written
func (r *SQLiteRepository) GetEntry(ctx context.Context, key string) (*Entry, error) {
	ctx, cancel := WithTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM kv_store WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanEntry, "key", key, key)
}

// Put creates or replaces the value for key
func (r *SQLiteRepository) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if value == nil {
		value = []byte{}
	}

	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, "put "+key, query, key, value, FormatTimeForDB(r.now()))
}

// Delete removes key; absent keys are ignored
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := WithTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	return Execute(ctx, r.db, "delete "+key, `DELETE FROM kv_store WHERE key = ?`, key)
}
