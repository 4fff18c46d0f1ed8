package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestManagerSearchOrder(t *testing.T) {
	low, high := t.TempDir(), t.TempDir()
	writeFile(t, low, "cube.obj", "low")
	writeFile(t, low, "only-low.obj", "only")
	writeFile(t, high, "cube.obj", "high")

	m := NewManager(low)
	m.AddDir(high)

	data, err := m.Load("cube.obj")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "high" {
		t.Errorf("expected last added directory to win, got %q", data)
	}

	data, err = m.Load("only-low.obj")
	if err != nil || string(data) != "only" {
		t.Errorf("fallback to earlier directory failed: %q, %v", data, err)
	}

	if _, err := m.Load("missing.obj"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManagerAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.obj", "abs")

	m := NewManager(t.TempDir())
	data, err := m.Load(filepath.Join(dir, "a.obj"))
	if err != nil || string(data) != "abs" {
		t.Errorf("absolute path: %q, %v", data, err)
	}
}

func TestManagerCaches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.obj", "first")

	m := NewManager(dir)
	if _, err := m.Load("a.obj"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "a.obj", "second")

	data, err := m.Load("a.obj")
	if err != nil || string(data) != "first" {
		t.Errorf("expected cached contents, got %q, %v", data, err)
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits / %d misses, want 1 / 1", hits, misses)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("k", []byte("v"))
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit")
	}
	c.Clear()
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Clear")
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 1 {
		t.Errorf("Stats() after clear = %d / %d", hits, misses)
	}
}
