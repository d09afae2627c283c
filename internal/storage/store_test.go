package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockThemeSpec implements ValidatingSpec for testing FileStore
type mockThemeSpec struct {
	Name   string            `json:"name"`
	Styles map[string]string `json:"styles"`
}

func (s *mockThemeSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must be set")
	}
	return nil
}

func writeAsset(t *testing.T, dir, file, id string, version uint, spec *mockThemeSpec) {
	t.Helper()

	asset := Asset[*mockThemeSpec]{
		Version:    version,
		Identifier: id,
		Spec:       spec,
	}
	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("failed to marshal test asset: %v", err)
	}
	err = os.WriteFile(filepath.Join(dir, file), data, 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestNewFileStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "path", store.path, tmpDir)
	testutil.AssertEqual(t, "records length", len(store.records), 0)
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*mockThemeSpec]("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewFileStore_WithExistingAssets(t *testing.T) {
	tmpDir := t.TempDir()

	writeAsset(t, tmpDir, "default.json", "default", 1, &mockThemeSpec{
		Name:   "Default",
		Styles: map[string]string{"error": "red"},
	})
	writeAsset(t, tmpDir, "spooky.json", "spooky", 1, &mockThemeSpec{
		Name:   "Spooky",
		Styles: map[string]string{"error": "magenta"},
	})

	store, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.records), 2)

	theme := store.Get("default")
	if theme == nil {
		t.Fatal("expected default theme to be loaded")
	}
	testutil.AssertEqual(t, "theme name", theme.Name, "Default")
	testutil.AssertEqual(t, "error style", theme.Styles["error"], "red")
}

func TestNewFileStore_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "bad.json"), []byte(`{invalid json`), 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err = NewFileStore[*mockThemeSpec](tmpDir)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNewFileStore_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()

	// Version 0 fails envelope validation
	writeAsset(t, tmpDir, "bad.json", "bad", 0, &mockThemeSpec{Name: "Bad"})

	_, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err == nil {
		t.Error("expected validation error")
	}
}

func TestNewFileStore_DuplicateKey(t *testing.T) {
	tmpDir := t.TempDir()

	subDir := filepath.Join(tmpDir, "subdir")
	err := os.Mkdir(subDir, 0755)
	if err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	writeAsset(t, tmpDir, "file1.json", "duplicate-id", 1, &mockThemeSpec{Name: "One"})
	writeAsset(t, subDir, "file2.json", "duplicate-id", 1, &mockThemeSpec{Name: "Two"})

	_, err = NewFileStore[*mockThemeSpec](tmpDir)
	if err == nil {
		t.Error("expected error for duplicate key")
	}
}

func TestFileStore_IgnoresNonJSON(t *testing.T) {
	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("not an asset"), 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "record count", len(store.records), 0)
}

func TestFileStore_SaveAndGet(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := &mockThemeSpec{Name: "Custom", Styles: map[string]string{"hint": "magenta"}}
	err = store.Save("custom", spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.Get("custom")
	testutil.AssertEqual(t, "cached value", got, spec)

	// Saved file round-trips through a fresh store
	reloaded, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = reloaded.Get("custom")
	if got == nil {
		t.Fatal("expected custom theme after reload")
	}
	testutil.AssertEqual(t, "reloaded name", got.Name, "Custom")
}

func TestFileStore_GetMissing(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.Get("nope")
	if got != nil {
		t.Errorf("expected nil for missing record, got %v", got)
	}
}

func TestFileStore_GetAll(t *testing.T) {
	tmpDir := t.TempDir()

	writeAsset(t, tmpDir, "a.json", "a", 1, &mockThemeSpec{Name: "A"})
	writeAsset(t, tmpDir, "b.json", "b", 1, &mockThemeSpec{Name: "B"})

	store, err := NewFileStore[*mockThemeSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := store.GetAll()
	testutil.AssertEqual(t, "count", len(all), 2)
	testutil.AssertEqual(t, "a name", all["a"].Name, "A")
	testutil.AssertEqual(t, "b name", all["b"].Name, "B")

	// Mutating the returned map must not affect the store
	delete(all, "a")
	testutil.AssertEqual(t, "store unaffected", len(store.GetAll()), 2)
}
