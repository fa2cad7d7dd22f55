package store

import (
	"context"
	"testing"

	"github.com/traino-dev/traino/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"kv", "request_log"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}

func TestKVSetGet(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "greeting", "hello"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, found, err := kv.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found")
	}
	if got != "hello" {
		t.Errorf("value = %q, want %q", got, "hello")
	}
}

func TestKVGetMissing(t *testing.T) {
	kv := openTestStore(t).KV()

	got, found, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Errorf("found missing key with value %q", got)
	}
}

func TestKVOverwrite(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, _, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "second" {
		t.Errorf("value = %q, want %q", got, "second")
	}
}

func TestKVDelete(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, found, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Error("expected key to be gone after delete")
	}

	// Deleting a missing key is not an error.
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestProgressRoundTripThroughSQLite(t *testing.T) {
	ps := NewProgressStore(openTestStore(t).KV())
	ctx := context.Background()

	want := progress.Progress{
		TotalMessages:    11,
		SessionsCount:    3,
		LastSessionDate:  "2026-08-21",
		FirstSessionDate: "2026-08-01",
	}
	if err := ps.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := ps.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}
