package database

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *Manager {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateItem_AssignsIncreasingIDs(t *testing.T) {
	db := newTestDB(t)

	first, err := db.CreateItem("Widget", 5)
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}
	second, err := db.CreateItem("Gadget", 3)
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	if first.ID <= 0 {
		t.Fatalf("expected positive id, got %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected second id > %d, got %d", first.ID, second.ID)
	}

	saved, err := db.GetItem(second.ID)
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected item to be saved")
	}
	if saved.Name != "Gadget" || saved.Quantity != 3 {
		t.Fatalf("expected Gadget/3, got %s/%d", saved.Name, saved.Quantity)
	}
}

func TestUpdateItem(t *testing.T) {
	db := newTestDB(t)

	item, err := db.CreateItem("Widget", 5)
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	n, err := db.UpdateItem(item.ID, "Sprocket", 9)
	if err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row affected, got %d", n)
	}

	saved, err := db.GetItem(item.ID)
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if saved.Name != "Sprocket" || saved.Quantity != 9 {
		t.Fatalf("expected Sprocket/9, got %s/%d", saved.Name, saved.Quantity)
	}

	n, err = db.UpdateItem(item.ID+100, "Ghost", 1)
	if err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows affected for missing id, got %d", n)
	}
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)

	item, err := db.CreateItem("Widget", 5)
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}

	n, err := db.DeleteItem(item.ID)
	if err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row affected, got %d", n)
	}

	saved, err := db.GetItem(item.ID)
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if saved != nil {
		t.Fatalf("expected item to be gone, got %+v", saved)
	}

	n, err = db.DeleteItem(item.ID)
	if err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows affected on second delete, got %d", n)
	}
}

func TestListItems_OrderedByID(t *testing.T) {
	db := newTestDB(t)

	items, err := db.ListItems()
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty inventory, got %d items", len(items))
	}

	for _, name := range []string{"A", "B", "C"} {
		if _, err := db.CreateItem(name, 1); err != nil {
			t.Fatalf("CreateItem returned error: %v", err)
		}
	}

	items, err = db.ListItems()
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"A", "B", "C"} {
		if items[i].Name != want {
			t.Fatalf("item %d: expected %s, got %s", i, want, items[i].Name)
		}
		if i > 0 && items[i].ID <= items[i-1].ID {
			t.Fatalf("items not ordered by id: %+v", items)
		}
	}

	count, err := db.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}

func TestListItems_ToleratesLegacyNulls(t *testing.T) {
	db := newTestDB(t)

	// Older inventory files declared name and quantity without NOT NULL.
	if _, err := db.exec(`DROP TABLE inventory`); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}
	if _, err := db.exec(`CREATE TABLE Inventory (ID INTEGER PRIMARY KEY, Name TEXT, Quantity INTEGER)`); err != nil {
		t.Fatalf("failed to create legacy table: %v", err)
	}
	if _, err := db.exec(`INSERT INTO Inventory (Name, Quantity) VALUES (NULL, NULL)`); err != nil {
		t.Fatalf("failed to seed legacy row: %v", err)
	}

	items, err := db.ListItems()
	if err != nil {
		t.Fatalf("ListItems returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "" || items[0].Quantity != 0 {
		t.Fatalf("expected zero values for NULL columns, got %+v", items[0])
	}
}
