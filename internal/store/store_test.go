package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestStore creates an initialized store in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Init(filepath.Join(t.TempDir(), DefaultDBName))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestInit_RefusesExistingStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DefaultDBName)

	st, err := Init(dbPath)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	st.Close()

	if _, err := Init(dbPath); !errors.Is(err, ErrStoreExists) {
		t.Errorf("expected ErrStoreExists, got %v", err)
	}
}

func TestInit_SurfacesStatFailure(t *testing.T) {
	// A regular file where a directory is expected makes Stat fail with
	// something other than "not exist"; Init must not plow ahead.
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "notadir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Init(filepath.Join(blocker, DefaultDBName))
	if err == nil {
		t.Fatal("expected error for unstatable path")
	}
	if errors.Is(err, ErrStoreExists) {
		t.Errorf("stat failure misreported as existing store: %v", err)
	}
}

func TestOpen_MissingStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DefaultDBName)

	if _, err := Open(dbPath); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestOpen_CorruptStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DefaultDBName)
	if err := os.WriteFile(dbPath, []byte("not a sqlite database"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(dbPath); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestOpen_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DefaultDBName)

	st, err := Init(dbPath)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := st.AddTags("a.jpg", []string{"x"}); err != nil {
		t.Fatalf("AddTags failed: %v", err)
	}
	st.Close()

	st, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	tags, err := st.TagsOf("a.jpg")
	if err != nil {
		t.Fatalf("TagsOf failed: %v", err)
	}
	if len(tags) != 1 || tags[0] != "x" {
		t.Errorf("expected [x] after reopen, got %v", tags)
	}
}

func TestStats(t *testing.T) {
	st := newTestStore(t)

	mustAdd(t, st, "a.jpg", "x", "y")
	mustAdd(t, st, "b.jpg", "x")

	files, tags, pairs, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if files != 2 || tags != 2 || pairs != 3 {
		t.Errorf("expected 2 files, 2 tags, 3 pairs; got %d, %d, %d", files, tags, pairs)
	}
}

func TestIntegrityCheck(t *testing.T) {
	st := newTestStore(t)

	verdict, err := st.IntegrityCheck()
	if err != nil {
		t.Fatalf("IntegrityCheck failed: %v", err)
	}
	if verdict != "ok" {
		t.Errorf("expected verdict ok, got %q", verdict)
	}
}

// mustAdd adds tags to a file, failing the test on error.
func mustAdd(t *testing.T, st *Store, path string, tags ...string) {
	t.Helper()
	if _, err := st.AddTags(path, tags); err != nil {
		t.Fatalf("AddTags(%q, %v) failed: %v", path, tags, err)
	}
}
