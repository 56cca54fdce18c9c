// Package logstore persists the reading log across database backends.
package logstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/IsaacParker30/paper-read/internal/contract"
	"github.com/IsaacParker30/paper-read/schema"
	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// logTable is the name of the reading log table.
const logTable = "reading_log"

// LogStoreImpl handles durable storage of reading entries using various
// database backends.
type LogStoreImpl struct {
	db         *sql.DB
	backend    schema.StoreBackend
	driverName string
}

var _ contract.LogStore = &LogStoreImpl{} // Compile-time check

// NewLogStore initializes and returns a new LogStore based on the backend type.
func NewLogStore(backend schema.StoreBackend, connStr string) (contract.LogStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetLogDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for running without persistence
		return &LogStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	if err := createLogTable(db, backend); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &LogStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createLogTable creates the reading_log table and its indexes.
func createLogTable(db *sql.DB, backend schema.StoreBackend) error {
	queries := []string{getCreateTableQuery(backend)}
	queries = append(queries,
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_reading_log_logged_on ON %s (logged_on)`, logTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_reading_log_paper_id ON %s (paper_id)`, logTable),
	)
	if backend == schema.MySQLBackend {
		// MySQL has no CREATE INDEX IF NOT EXISTS; rely on the table create only.
		queries = queries[:1]
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("failed to create table %s: %w", logTable, err)
		}
	}
	return nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.StoreBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				paper_title TEXT NOT NULL,
				paper_id VARCHAR(255) NOT NULL,
				summary TEXT NOT NULL,
				word_count INT NOT NULL,
				logged_on VARCHAR(10) NOT NULL,
				INDEX idx_reading_log_logged_on (logged_on),
				INDEX idx_reading_log_paper_id (paper_id)
			);
		`, logTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				paper_title TEXT NOT NULL,
				paper_id TEXT NOT NULL,
				summary TEXT NOT NULL,
				word_count INTEGER NOT NULL,
				logged_on TEXT NOT NULL
			);
		`, logTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				paper_title TEXT NOT NULL,
				paper_id TEXT NOT NULL,
				summary TEXT NOT NULL,
				word_count INTEGER NOT NULL,
				logged_on TEXT NOT NULL
			);
		`, logTable)
	}
}

// rebind converts '?' placeholders to the backend's parameter style.
func (s *LogStoreImpl) rebind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

// Insert appends a new reading entry and returns its row ID.
func (s *LogStoreImpl) Insert(entry schema.ReadingEntry) (int64, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return 0, nil
	}

	day := schema.FormatDay(entry.LoggedOn)

	if s.backend == schema.PostgreSQLBackend {
		// lib-level LastInsertId is unsupported by pgx; use RETURNING instead.
		query := s.rebind(fmt.Sprintf(
			`INSERT INTO %s (paper_title, paper_id, summary, word_count, logged_on) VALUES (?, ?, ?, ?, ?) RETURNING id`, logTable))
		var id int64
		err := s.db.QueryRow(query, entry.Title, entry.PaperID, entry.Summary, entry.WordCount, day).Scan(&id)
		return id, err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (paper_title, paper_id, summary, word_count, logged_on) VALUES (?, ?, ?, ?, ?)`, logTable)
	res, err := s.db.Exec(query, entry.Title, entry.PaperID, entry.Summary, entry.WordCount, day)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DistinctActiveDays returns every day with at least one logged reading,
// in ascending order.
func (s *LogStoreImpl) DistinctActiveDays() ([]time.Time, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT DISTINCT logged_on FROM %s ORDER BY logged_on ASC`, logTable)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		day, err := schema.ParseDay(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed logged_on value %q: %w", raw, err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// CountEventsPerDay returns the number of readings logged on each day in
// [start, end]. Days without rows are zero-filled so the result is dense.
func (s *LogStoreImpl) CountEventsPerDay(start, end time.Time) (map[time.Time]int, error) {
	counts := make(map[time.Time]int)

	if s.backend != schema.NoneBackend && s.db != nil {
		query := s.rebind(fmt.Sprintf(
			`SELECT logged_on, COUNT(*) FROM %s WHERE logged_on BETWEEN ? AND ? GROUP BY logged_on`, logTable))
		rows, err := s.db.Query(query, schema.FormatDay(start), schema.FormatDay(end))
		if err != nil {
			return nil, err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var raw string
			var c int
			if err := rows.Scan(&raw, &c); err != nil {
				return nil, err
			}
			day, err := schema.ParseDay(raw)
			if err != nil {
				return nil, fmt.Errorf("malformed logged_on value %q: %w", raw, err)
			}
			counts[day] = c
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	// Explicit fill step: downstream streak walks assume dense coverage.
	return denseFill(counts, schema.DayOf(start), schema.DayOf(end)), nil
}

// denseFill copies counts into a map covering every day of [start, end].
func denseFill(counts map[time.Time]int, start, end time.Time) map[time.Time]int {
	dense := make(map[time.Time]int)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dense[d] = counts[d]
	}
	return dense
}

// CountOnDay returns the number of readings logged on a single day.
func (s *LogStoreImpl) CountOnDay(day time.Time) (int, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return 0, nil
	}

	query := s.rebind(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE logged_on = ?`, logTable))
	var n int
	err := s.db.QueryRow(query, schema.FormatDay(day)).Scan(&n)
	return n, err
}

// RecentEntries returns up to limit entries, newest first.
func (s *LogStoreImpl) RecentEntries(limit int) ([]schema.ReadingEntry, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil, nil
	}

	query := s.rebind(fmt.Sprintf(
		`SELECT id, paper_title, paper_id, summary, word_count, logged_on FROM %s ORDER BY logged_on DESC, id DESC LIMIT ?`, logTable))
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []schema.ReadingEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// FindByPaperID returns the most recently logged entry with the given paper ID.
func (s *LogStoreImpl) FindByPaperID(paperID string) (schema.ReadingEntry, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return schema.ReadingEntry{}, sql.ErrNoRows
	}

	query := s.rebind(fmt.Sprintf(
		`SELECT id, paper_title, paper_id, summary, word_count, logged_on FROM %s WHERE paper_id = ? ORDER BY logged_on DESC, id DESC LIMIT 1`, logTable))
	row := s.db.QueryRow(query, paperID)
	return scanEntry(row.Scan)
}

// DeleteByPaperID removes all entries with the given paper ID.
func (s *LogStoreImpl) DeleteByPaperID(paperID string) (int64, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return 0, nil
	}

	query := s.rebind(fmt.Sprintf(`DELETE FROM %s WHERE paper_id = ?`, logTable))
	res, err := s.db.Exec(query, paperID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// TotalEntries returns the total number of logged readings.
func (s *LogStoreImpl) TotalEntries() (int, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return 0, nil
	}

	var n int
	err := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, logTable)).Scan(&n)
	return n, err
}

// scanEntry scans one reading_log row into a ReadingEntry.
func scanEntry(scan func(dest ...any) error) (schema.ReadingEntry, error) {
	var entry schema.ReadingEntry
	var raw string
	if err := scan(&entry.ID, &entry.Title, &entry.PaperID, &entry.Summary, &entry.WordCount, &raw); err != nil {
		return schema.ReadingEntry{}, err
	}
	day, err := schema.ParseDay(raw)
	if err != nil {
		return schema.ReadingEntry{}, fmt.Errorf("malformed logged_on value %q: %w", raw, err)
	}
	entry.LoggedOn = day
	return entry, nil
}

// Close closes the underlying DB connection.
func (s *LogStoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetStatus returns status information about the log store.
func (s *LogStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}

	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	row := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, logTable))
	if err := row.Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	var firstRaw, lastRaw string
	row = s.db.QueryRow(fmt.Sprintf(`SELECT MIN(logged_on), MAX(logged_on) FROM %s`, logTable))
	if err := row.Scan(&firstRaw, &lastRaw); err != nil {
		return status, fmt.Errorf("failed to get logged range: %w", err)
	}
	if first, err := schema.ParseDay(firstRaw); err == nil {
		status.FirstLoggedOn = first
	}
	if last, err := schema.ParseDay(lastRaw); err == nil {
		status.LastLoggedOn = last
	}

	// Estimate table size. For SQLite, use page_count * page_size.
	if s.backend == schema.SQLiteBackend {
		row = s.db.QueryRow(`SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()`)
		if err := row.Scan(&status.TableSizeBytes); err != nil {
			// If pragma fails, skip size
			status.TableSizeBytes = 0
		}
	} else {
		// Rough estimate for server backends
		status.TableSizeBytes = int64(status.TotalEntries) * 1000
	}

	return status, nil
}
