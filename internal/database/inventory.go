package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// Item is a single row of the inventory table.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateItem inserts a new item and returns it with the store-assigned ID.
func (db *db) CreateItem(name string, quantity int) (*Item, error) {
	result, err := db.exec(`INSERT INTO inventory (name, quantity) VALUES (?, ?)`, name, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get item id: %w", err)
	}

	return &Item{ID: id, Name: name, Quantity: quantity}, nil
}

// UpdateItem overwrites the name and quantity of an item.
// It returns the number of rows affected (0 when the ID does not exist).
func (db *db) UpdateItem(id int64, name string, quantity int) (int64, error) {
	result, err := db.exec(`UPDATE inventory SET name = ?, quantity = ? WHERE id = ?`, name, quantity, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update item %d: %w", id, err)
	}
	return rowsAffected(result)
}

// DeleteItem removes an item, returning the number of rows affected.
func (db *db) DeleteItem(id int64) (int64, error) {
	result, err := db.exec(`DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return rowsAffected(result)
}

// GetItem retrieves an item by ID, returning nil when it does not exist.
func (db *db) GetItem(id int64) (*Item, error) {
	item, err := scanItem(db.queryRow(`SELECT id, name, quantity FROM inventory WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

// ListItems returns every item ordered by ID.
func (db *db) ListItems() ([]Item, error) {
	rows, err := db.query(`SELECT id, name, quantity FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	var (
		item     Item
		name     sql.NullString
		quantity sql.NullInt64
	)
	if err := row.Scan(&item.ID, &name, &quantity); err != nil {
		return nil, err
	}
	item.Name = nullStringValue(name)
	item.Quantity = int(nullInt64Value(quantity))
	return &item, nil
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
