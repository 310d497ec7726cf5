package database

import "database/sql"

// exec runs a single write statement; writes are serialized with transactions.
func (db *db) exec(query string, args ...any) (sql.Result, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn.Exec(query, args...)
}

func (db *db) query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *db) queryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *db) begin() (*sql.Tx, error) {
	return db.conn.Begin()
}
