package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"mulga/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	series := core.Series{
		{Year: "2020", Index: 100},
		{Year: "2021", Index: 102.5},
		{Year: "2024", Index: 114.2},
	}
	if err := repo.Save(ctx, "110K01119", series); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, fetchedAt, err := repo.Load(ctx, "110K01119")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Year != "2020" || got[2].Year != "2024" {
		t.Errorf("series order wrong: %v", got)
	}
	if got[1].Index != 102.5 {
		t.Errorf("index = %v, want 102.5", got[1].Index)
	}
	if time.Since(fetchedAt) > time.Minute {
		t.Errorf("fetchedAt too old: %v", fetchedAt)
	}
}

func TestSaveReplacesSeries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "000", core.Series{{Year: "2020", Index: 100}, {Year: "2021", Index: 101}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, "000", core.Series{{Year: "2024", Index: 114}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, _, err := repo.Load(ctx, "000")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[0].Year != "2024" {
		t.Errorf("series = %v, want only 2024", got)
	}
}

func TestLoadUnknownCode(t *testing.T) {
	repo := newTestRepo(t)

	_, _, err := repo.Load(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCodes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, code := range []string{"110", "000", "999"} {
		if err := repo.Save(ctx, code, core.Series{{Year: "2020", Index: 100}}); err != nil {
			t.Fatalf("Save(%s): %v", code, err)
		}
	}

	codes, err := repo.Codes(ctx)
	if err != nil {
		t.Fatalf("Codes: %v", err)
	}
	if len(codes) != 3 {
		t.Fatalf("len = %d, want 3", len(codes))
	}
	if codes[0] != "000" || codes[2] != "999" {
		t.Errorf("codes = %v, want sorted ascending", codes)
	}
}
