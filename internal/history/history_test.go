package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "skycast.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("Porto, Porto", 41.15, -8.62); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Record("Lisbon, Lisboa", 38.72, -9.14); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	if entries[0].Latitude != 38.72 {
		t.Errorf("entries[0].Latitude = %v, want 38.72", entries[0].Latitude)
	}
}

func TestRecordUpsertsByName(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("Porto, Porto", 41.15, -8.62); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	// Same name again with refined coordinates: one row, updated
	if err := store.Record("Porto, Porto", 41.1496, -8.611); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	if entries[0].Longitude != -8.611 {
		t.Errorf("Longitude = %v, want the updated -8.611", entries[0].Longitude)
	}
}

func TestRecordEmptyNameFallsBackToCoordinates(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("", 41.15, -8.62); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := store.Recent(1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	if entries[0].Name != "41.1500, -8.6200" {
		t.Errorf("Name = %q, want coordinate fallback", entries[0].Name)
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		if err := store.Record(name, float64(i), float64(i)); err != nil {
			t.Fatalf("Record(%s) error = %v", name, err)
		}
	}

	entries, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if len(entries) != 5 {
		t.Errorf("len(entries) = %d, want 5", len(entries))
	}
}
