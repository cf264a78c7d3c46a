package leaderboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/reef-dash/constants"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ava", "ava"},
		{"trimmed", "  ava \t", "ava"},
		{"empty", "", constants.DefaultPlayerName},
		{"whitespace only", "   ", constants.DefaultPlayerName},
		{"control stripped", "a\x00b\nc", "abc"},
		{"capped runes", strings.Repeat("é", 20), strings.Repeat("é", constants.MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSortOrder(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	idA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	idB := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	entries := []Entry{
		{ID: idB, Name: "tie-late-id", Score: 50, Time: base},
		{ID: idA, Name: "low", Score: 10, Time: base},
		{ID: idA, Name: "tie-early-id", Score: 50, Time: base},
		{ID: idA, Name: "tie-later", Score: 50, Time: base.Add(time.Second)},
		{ID: idA, Name: "high", Score: 90, Time: base.Add(time.Hour)},
	}
	Sort(entries)

	want := []string{"high", "tie-early-id", "tie-late-id", "tie-later", "low"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, entries[i].Name)
		}
	}
}

// storeContract exercises behavior every backend shares
func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if err := store.Append(ctx, "neg", -1); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("Expected ErrInvalidEntry for negative score, got %v", err)
	}

	for i, score := range []int{30, 120, 0, 75, 120, 5, 60} {
		name := []string{"a", "b", "c", "d", "e", "f", "g"}[i]
		if err := store.Append(ctx, name, score); err != nil {
			t.Fatalf("Append %s: %v", name, err)
		}
	}

	got, err := store.TopN(ctx, 3)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}
	if got[0].Score != 120 || got[1].Score != 120 || got[2].Score != 75 {
		t.Errorf("Expected scores [120 120 75], got [%d %d %d]", got[0].Score, got[1].Score, got[2].Score)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score == got[i-1].Score && got[i].Time.Before(got[i-1].Time) {
			t.Errorf("Expected ties ordered by time, got %v before %v", got[i-1].Time, got[i].Time)
		}
	}

	all, err := store.TopN(ctx, 100)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(all) != 7 {
		t.Errorf("Expected 7 entries, got %d", len(all))
	}

	none, err := store.TopN(ctx, 0)
	if err != nil || len(none) != 0 {
		t.Errorf("Expected empty result for n=0, got %d entries, err %v", len(none), err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Append(ctx, "x", 1); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected no entries, got %d", store.Len())
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeContract(t, store)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	ctx := context.Background()

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := first.Append(ctx, "  diver  ", 42); err != nil {
		t.Fatalf("Append: %v", err)
	}

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	got, err := second.TopN(ctx, 5)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(got) != 1 || got[0].Name != "diver" || got[0].Score != 42 {
		t.Errorf("Expected [diver 42], got %+v", got)
	}
	if got[0].ID == uuid.Nil {
		t.Error("Expected entry ID to be assigned")
	}

	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("Expected no temp files left, found %v", matches)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := store.TopN(context.Background(), 5); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
	if err := store.Append(context.Background(), "x", 1); err == nil {
		t.Error("Expected append to refuse overwriting a corrupt file")
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), fileName))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	got, err := store.TopN(context.Background(), 5)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty leaderboard, got %d entries", len(got))
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("REEF_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("REEF_TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := OpenPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer db.Close()

	table := "leaderboard_test_" + strings.ReplaceAll(uuid.NewString()[:8], "-", "")
	store := NewPostgresStore(db, table)
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	defer db.ExecContext(context.Background(), "DROP TABLE IF EXISTS "+store.table)

	storeContract(t, store)
}
