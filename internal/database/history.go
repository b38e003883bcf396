package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/carspecs/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "carspecs.db"

// timestampLayout is fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrLookupNotFound is returned when no lookup has the requested ID.
var ErrLookupNotFound = errors.New("lookup not found")

// HistoryDB records lookup results.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error
// wrapping fs.ErrNotExist is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	dsn := dbPath + "?mode=rwc"
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	} else {
		if _, err := os.Stat(dbPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("no lookup history at %s (run a lookup with --save first): %w", dbPath, err)
			}
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS lookups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		mode TEXT NOT NULL,
		url TEXT NOT NULL,
		status_code INTEGER NOT NULL DEFAULT 0,
		page_hash TEXT NOT NULL DEFAULT '',
		row_count INTEGER NOT NULL DEFAULT 0,
		found INTEGER NOT NULL DEFAULT 0,
		table_json TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_lookups_make ON lookups(make);
	CREATE INDEX IF NOT EXISTS idx_lookups_timestamp ON lookups(timestamp);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// LookupRecord is one stored lookup.
type LookupRecord struct {
	ID         int64
	Timestamp  time.Time
	Request    model.Request
	Mode       string
	URL        string
	StatusCode int
	PageHash   string
	RowCount   int

	// Found is false when the lookup produced no table.
	Found bool

	// Table is the stored result table, nil when Found is false.
	// ListLookups leaves it nil; GetLookup fills it.
	Table *model.Table
}

// SaveLookup stores result and returns the new row ID.
func (h *HistoryDB) SaveLookup(ctx context.Context, result *model.Result) (int64, error) {
	var tableJSON sql.NullString
	if result.Found() {
		data, err := json.Marshal(result.Table)
		if err != nil {
			return 0, fmt.Errorf("failed to serialize table: %w", err)
		}
		tableJSON = sql.NullString{String: string(data), Valid: true}
	}

	timestamp := result.LookedUpAt
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	query := `
	INSERT INTO lookups (timestamp, make, model, year, mode, url, status_code, page_hash, row_count, found, table_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := h.db.ExecContext(ctx, query,
		timestamp.UTC().Format(timestampLayout),
		result.Request.Make,
		result.Request.Model,
		result.Request.Year,
		result.Mode.String(),
		result.URL,
		result.StatusCode,
		result.PageHash,
		result.Table.Len(),
		boolToInt(result.Found()),
		tableJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save lookup: %w", err)
	}

	return res.LastInsertId()
}

// ListOptions filters ListLookups.
type ListOptions struct {
	// Make restricts the listing to one make. Empty lists all makes.
	Make string

	// Limit caps the number of records. Zero or negative means no limit.
	Limit int
}

// ListLookups returns stored lookups, newest first.
func (h *HistoryDB) ListLookups(ctx context.Context, opts ListOptions) ([]LookupRecord, error) {
	query := `
	SELECT id, timestamp, make, model, year, mode, url, status_code, page_hash, row_count, found
	FROM lookups
	WHERE (? = '' OR make = ?)
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := h.db.QueryContext(ctx, query, opts.Make, opts.Make, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups: %w", err)
	}
	defer rows.Close()

	var records []LookupRecord
	for rows.Next() {
		var rec LookupRecord
		var timestamp string
		if err := rows.Scan(&rec.ID, &timestamp, &rec.Request.Make, &rec.Request.Model, &rec.Request.Year,
			&rec.Mode, &rec.URL, &rec.StatusCode, &rec.PageHash, &rec.RowCount, &rec.Found); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		rec.Timestamp = parseTimestamp(timestamp)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetLookup returns the lookup with the given ID including its table.
// It returns ErrLookupNotFound when no such row exists.
func (h *HistoryDB) GetLookup(ctx context.Context, id int64) (*LookupRecord, error) {
	query := `
	SELECT id, timestamp, make, model, year, mode, url, status_code, page_hash, row_count, found, table_json
	FROM lookups
	WHERE id = ?
	`

	var rec LookupRecord
	var timestamp string
	var tableJSON sql.NullString
	err := h.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &timestamp, &rec.Request.Make, &rec.Request.Model,
		&rec.Request.Year, &rec.Mode, &rec.URL, &rec.StatusCode, &rec.PageHash, &rec.RowCount, &rec.Found, &tableJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrLookupNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup: %w", err)
	}

	rec.Timestamp = parseTimestamp(timestamp)
	if tableJSON.Valid && tableJSON.String != "" {
		var table model.Table
		if err := json.Unmarshal([]byte(tableJSON.String), &table); err != nil {
			return nil, fmt.Errorf("failed to parse stored table: %w", err)
		}
		rec.Table = &table
	}

	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timestampFormats contains the timestamp formats that may be stored.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseTimestamp parses a stored timestamp, returning zero time if no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
