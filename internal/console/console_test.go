package console

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saltyorg/stockroom/internal/database"
	"github.com/saltyorg/stockroom/internal/inventory"
)

func newTestService(t *testing.T) *inventory.Service {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return inventory.NewService(db)
}

func runConsole(t *testing.T, inv Inventory, input string) string {
	t.Helper()

	var out bytes.Buffer
	if err := New(inv, strings.NewReader(input), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

const prompt = menu + "Enter your choice: "

func TestRun_AddAndView(t *testing.T) {
	svc := newTestService(t)

	input := "1\nWidget\n5\n4\n5\n"
	expected := prompt + "Enter item name: Enter item quantity: " + msgAdded + "\n" +
		prompt + msgInventoryTitle + "\nID: 1, Name: Widget, Quantity: 5\n" +
		prompt

	if got := runConsole(t, svc, input); got != expected {
		t.Errorf("Unexpected output:\nGot: %q\nExpected: %q", got, expected)
	}
}

func TestRun_UpdateAndDelete(t *testing.T) {
	svc := newTestService(t)

	input := "1\nWidget\n5\n2\n1\nGizmo\n8\n4\n3\n1\n4\n"
	got := runConsole(t, svc, input)

	for _, want := range []string{
		msgAdded,
		"Enter item ID to update: Enter new item name: Enter new item quantity: " + msgUpdated,
		"ID: 1, Name: Gizmo, Quantity: 8",
		"Enter item ID to delete: " + msgDeleted,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}

	// Final listing is empty: title followed directly by the next menu.
	if !strings.HasSuffix(got, msgInventoryTitle+"\n"+prompt) {
		t.Errorf("expected empty final listing, got:\n%s", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		deny  string
	}{
		{
			name:  "blank name",
			input: "1\n   \n3\n",
			want:  msgInvalidInput,
			deny:  msgAdded,
		},
		{
			name:  "zero quantity",
			input: "1\nWidget\n0\n",
			want:  msgInvalidInput,
			deny:  msgAdded,
		},
		{
			name:  "update zero id",
			input: "2\n0\nWidget\n3\n",
			want:  msgInvalidID,
			deny:  msgUpdated,
		},
		{
			name:  "update missing id",
			input: "2\n99\nWidget\n3\n",
			want:  msgNotFound,
			deny:  msgUpdated,
		},
		{
			name:  "delete missing id",
			input: "3\n99\n",
			want:  msgNotFound,
			deny:  msgDeleted,
		},
		{
			name:  "delete negative id",
			input: "3\n-1\n",
			want:  msgInvalidID,
			deny:  msgDeleted,
		},
		{
			name:  "non-numeric quantity",
			input: "1\nWidget\nfive\n",
			want:  msgInvalidNumber,
			deny:  msgAdded,
		},
		{
			name:  "unknown choice",
			input: "9\n",
			want:  msgInvalidChoice,
		},
		{
			name:  "non-numeric choice",
			input: "add\n",
			want:  msgInvalidChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runConsole(t, newTestService(t), tt.input)
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.want, got)
			}
			if tt.deny != "" && strings.Contains(got, tt.deny) {
				t.Errorf("expected output not to contain %q, got:\n%s", tt.deny, got)
			}
		})
	}
}

type failingInventory struct{}

func (failingInventory) Add(context.Context, string, int) (*inventory.Item, error) {
	return nil, errors.New("database is locked")
}

func (failingInventory) Update(context.Context, int64, string, int) error {
	return errors.New("database is locked")
}

func (failingInventory) Delete(context.Context, int64) error {
	return errors.New("database is locked")
}

func (failingInventory) List(context.Context) ([]inventory.Item, error) {
	return nil, errors.New("database is locked")
}

func TestRun_StoreFailure(t *testing.T) {
	got := runConsole(t, failingInventory{}, "1\nWidget\n2\n4\n")

	if strings.Count(got, msgDatabaseError+"database is locked") != 2 {
		t.Errorf("expected two database errors, got:\n%s", got)
	}
	if strings.Contains(got, msgAdded) || strings.Contains(got, msgInventoryTitle) {
		t.Errorf("unexpected success output:\n%s", got)
	}
}

func TestRun_ExitAndEndOfInput(t *testing.T) {
	svc := newTestService(t)

	if got := runConsole(t, svc, "5\n4\n"); got != prompt {
		t.Errorf("expected exit after first choice, got %q", got)
	}
	if got := runConsole(t, svc, ""); got != prompt {
		t.Errorf("expected single prompt on empty input, got %q", got)
	}
	// Input ending mid-operation is a clean exit.
	if got := runConsole(t, svc, "1\nWidget\n"); strings.Contains(got, msgAdded) {
		t.Errorf("expected no add on truncated input, got %q", got)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(newTestService(t), strings.NewReader("4\n"), &out).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
