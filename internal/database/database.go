package database

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// db wraps the SQLite database connection
type db struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// New opens the inventory database at path and returns its manager.
func New(path string) (*Manager, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single operator, single writer.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	log.Debug().Str("path", path).Msg("Database connection established")

	return newManager(&db{
		conn: conn,
		path: path,
	}), nil
}

// Path returns the database file path
func (db *db) Path() string {
	return db.path
}

// Close releases the underlying connection pool.
func (db *db) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// transaction wraps a function in a database transaction
func (db *db) transaction(fn func(*sql.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
