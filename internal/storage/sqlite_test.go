package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLatestSnapshot(t *testing.T) {
	store := openTestStore(t)

	if entry, err := store.LatestSnapshot("goldrush"); err != nil || entry != nil {
		t.Fatalf("LatestSnapshot on empty store = (%v, %v), want (nil, nil)", entry, err)
	}

	first := []byte("version: 1\nresources: {gold: 5}\n")
	second := []byte("version: 1\nresources: {gold: 10}\n")

	if _, err := store.SaveSnapshot("goldrush", 1, first); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if _, err := store.SaveSnapshot("goldrush", 1, second); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	entry, err := store.LatestSnapshot("goldrush")
	if err != nil {
		t.Fatalf("LatestSnapshot failed: %v", err)
	}
	if entry == nil {
		t.Fatal("LatestSnapshot returned nil after saves")
	}
	if !bytes.Equal(entry.Data, second) {
		t.Errorf("latest data = %q, want the second snapshot", entry.Data)
	}
	if entry.Version != 1 {
		t.Errorf("version = %d, want 1", entry.Version)
	}
	if entry.World != "goldrush" {
		t.Errorf("world = %q, want goldrush", entry.World)
	}
}

func TestSnapshotsIsolatedPerWorld(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSnapshot("alpha", 1, []byte("a")); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	entry, err := store.LatestSnapshot("beta")
	if err != nil {
		t.Fatalf("LatestSnapshot failed: %v", err)
	}
	if entry != nil {
		t.Errorf("world beta sees world alpha's snapshot: %+v", entry)
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, data := range []string{"one", "two", "three"} {
		if _, err := store.SaveSnapshot("goldrush", 1, []byte(data)); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	}

	entries, err := store.ListSnapshots("goldrush", 2)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if string(entries[0].Data) != "three" || string(entries[1].Data) != "two" {
		t.Errorf("entries not newest-first: %q, %q", entries[0].Data, entries[1].Data)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	store := openTestStore(t)

	for _, data := range []string{"one", "two", "three", "four"} {
		if _, err := store.SaveSnapshot("goldrush", 1, []byte(data)); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
	}

	if err := store.Prune("goldrush", 2); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	entries, err := store.ListSnapshots("goldrush", 10)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries after prune, want 2", len(entries))
	}
	if string(entries[0].Data) != "four" || string(entries[1].Data) != "three" {
		t.Errorf("prune kept wrong rows: %q, %q", entries[0].Data, entries[1].Data)
	}
}
