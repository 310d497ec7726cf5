package database

import "database/sql"

// nullStringValue converts a sql.NullString to a string (empty if not valid).
// Inventory files written by earlier releases allowed NULL columns.
func nullStringValue(n sql.NullString) string {
	if n.Valid {
		return n.String
	}
	return ""
}

// nullInt64Value converts a sql.NullInt64 to an int64 (zero if not valid)
func nullInt64Value(n sql.NullInt64) int64 {
	if n.Valid {
		return n.Int64
	}
	return 0
}
