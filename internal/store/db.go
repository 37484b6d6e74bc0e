package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"feedback-dashboard/internal/model"

	"github.com/google/uuid"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Supported drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = model.ErrNotFound

// Store persists dataset load history and analyzer results.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database and creates tables if they do not exist.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("store dsn is required")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		// database/sql pools connections; a single one keeps sqlite writes serialized.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	datasetTable := `
	CREATE TABLE IF NOT EXISTS dataset_loads (
		id TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		name TEXT,
		status TEXT NOT NULL,
		records INTEGER NOT NULL DEFAULT 0,
		size_bytes BIGINT NOT NULL DEFAULT 0,
		error_message TEXT,
		archive_path TEXT,
		created_at TIMESTAMP NOT NULL
	);
	`
	analysisTable := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		label TEXT NOT NULL,
		summary TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`

	if _, err := s.db.ExecContext(ctx, datasetTable); err != nil {
		return fmt.Errorf("failed to create dataset_loads table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, analysisTable); err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// rebind converts ? placeholders to $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SaveDatasetLoad records a dataset load attempt, assigning an ID and timestamp when missing.
func (s *Store) SaveDatasetLoad(ctx context.Context, load *model.DatasetLoad) error {
	if load.ID == "" {
		load.ID = uuid.New().String()
	}
	if load.CreatedAt.IsZero() {
		load.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`INSERT INTO dataset_loads
		(id, origin, name, status, records, size_bytes, error_message, archive_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		load.ID, load.Origin, load.Name, load.Status, load.Records, load.SizeBytes,
		load.Error, load.ArchivePath, load.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save dataset load: %w", err)
	}
	return nil
}

// ListDatasetLoads returns the most recent dataset loads first
func (s *Store) ListDatasetLoads(ctx context.Context, limit int) ([]model.DatasetLoad, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT id, origin, name, status, records, size_bytes,
		error_message, archive_path, created_at
		FROM dataset_loads ORDER BY created_at DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dataset loads: %w", err)
	}
	defer rows.Close()

	loads := make([]model.DatasetLoad, 0)
	for rows.Next() {
		load, err := scanDatasetLoad(rows)
		if err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	return loads, rows.Err()
}

// GetDatasetLoad fetches one dataset load by ID
func (s *Store) GetDatasetLoad(ctx context.Context, id string) (model.DatasetLoad, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT id, origin, name, status, records, size_bytes,
		error_message, archive_path, created_at
		FROM dataset_loads WHERE id = ?`), id)

	load, err := scanDatasetLoad(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DatasetLoad{}, ErrNotFound
	}
	return load, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDatasetLoad(row scanner) (model.DatasetLoad, error) {
	var load model.DatasetLoad
	var name, errMsg, archive sql.NullString
	err := row.Scan(&load.ID, &load.Origin, &name, &load.Status, &load.Records, &load.SizeBytes,
		&errMsg, &archive, &load.CreatedAt)
	if err != nil {
		return model.DatasetLoad{}, err
	}
	load.Name = name.String
	load.Error = errMsg.String
	load.ArchivePath = archive.String
	return load, nil
}

// SaveAnalysis stores an analyzer result, assigning an ID and timestamp when missing.
func (s *Store) SaveAnalysis(ctx context.Context, a *model.Analysis) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`INSERT INTO analyses (id, text, label, summary, created_at)
		VALUES (?, ?, ?, ?, ?)`), a.ID, a.Text, a.Label, a.Summary, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns the most recent analyses first
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]model.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT id, text, label, summary, created_at
		FROM analyses ORDER BY created_at DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]model.Analysis, 0)
	for rows.Next() {
		var a model.Analysis
		if err := rows.Scan(&a.ID, &a.Text, &a.Label, &a.Summary, &a.CreatedAt); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}
