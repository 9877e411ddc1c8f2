package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pluang/hrbuddy/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS leaves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		leave_date TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_leaves_session ON leaves(session_id, leave_type);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// AppendLeave persists a new leave record and fills in its ID.
func (s *SQLiteStore) AppendLeave(ctx context.Context, record *domain.LeaveRecord) error {
	query := `INSERT INTO leaves (session_id, leave_type, leave_date, created_at) VALUES (?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		record.SessionID, string(record.Type), string(record.Date), record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert leave: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	record.ID = id

	return nil
}

// ListLeaves retrieves leave records for a session in append order.
func (s *SQLiteStore) ListLeaves(ctx context.Context, sessionID string, leaveType domain.LeaveType) ([]*domain.LeaveRecord, error) {
	query := `
		SELECT id, session_id, leave_type, leave_date, created_at
		FROM leaves WHERE session_id = ?`
	args := []interface{}{sessionID}

	if leaveType != "" {
		query += ` AND leave_type = ?`
		args = append(args, string(leaveType))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query leaves: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close leave rows", "error", closeErr)
		}
	}()

	var records []*domain.LeaveRecord
	for rows.Next() {
		var record domain.LeaveRecord
		var leaveType, leaveDate string
		var createdAt int64

		if err := rows.Scan(
			&record.ID, &record.SessionID, &leaveType, &leaveDate, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan leave row: %w", err)
		}

		record.Type = domain.LeaveType(leaveType)
		record.Date = domain.DayToken(leaveDate)
		record.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaves: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
