package database

import "fmt"

// Optimize runs SQLite's PRAGMA optimize to refresh planner stats.
func (db *db) Optimize() error {
	if db == nil || db.conn == nil {
		return fmt.Errorf("database not initialized")
	}

	if _, err := db.exec("PRAGMA optimize"); err != nil {
		return fmt.Errorf("failed to optimize database: %w", err)
	}

	return nil
}

// Vacuum rebuilds the database file to reclaim space left by deleted items.
func (db *db) Vacuum() error {
	if db == nil || db.conn == nil {
		return fmt.Errorf("database not initialized")
	}

	if _, err := db.exec("VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}

	return nil
}

// ItemCount returns the number of rows in the inventory table.
func (db *db) ItemCount() (int, error) {
	var count int
	if err := db.queryRow("SELECT COUNT(*) FROM inventory").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
