package icons

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

const testSVG = `<svg width="10" height="10" viewBox="0 0 10 10"><rect x="1" y="1" width="8" height="8" fill="#00ff00"/></svg>`

func writeIcon(t *testing.T, dir, name string) {
	t.Helper()

	path := filepath.Join(dir, name+".svg")
	if err := os.WriteFile(path, []byte(testSVG), 0o644); err != nil {
		t.Fatalf("Failed to write icon %s: %v", name, err)
	}
}

func TestCacheLoadRasterizesIcon(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "check")
	c := NewCache(dir, 24)

	img, err := c.Load("check")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if img == nil {
		t.Fatal("Load() returned nil image")
	}
	if img.Bounds() != image.Rect(0, 0, 24, 24) {
		t.Errorf("Expected 24x24 bounds, got %v", img.Bounds())
	}
	if _, _, _, a := img.At(12, 12).RGBA(); a == 0 {
		t.Error("Expected the center pixel to be painted")
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 cached image, got %d", c.Len())
	}
}

func TestCacheHitReturnsSameImage(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "check")
	c := NewCache(dir, 16)

	first, err := c.Load("check")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	second, err := c.Load("check")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if first != second {
		t.Error("Expected the cached image on the second load")
	}
}

func TestCacheMissingIcon(t *testing.T) {
	c := NewCache(t.TempDir(), 16)

	if _, err := c.Load("nope"); err == nil {
		t.Error("Load() should fail for a missing icon")
	}
	if c.Len() != 0 {
		t.Errorf("Expected nothing cached after a failed load, got %d", c.Len())
	}
}

func TestCacheMalformedIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.svg")
	if err := os.WriteFile(path, []byte("not an svg"), 0o644); err != nil {
		t.Fatalf("Failed to write icon: %v", err)
	}
	c := NewCache(dir, 16)

	if _, err := c.Load("broken"); err == nil {
		t.Error("Load() should fail for a malformed icon")
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeIcon(t, dir, name)
	}
	c := NewCacheWithSize(dir, 8, 2)

	first, _ := c.Load("a")
	c.Load("b")
	c.Load("c") // evicts a

	if c.Len() != 2 {
		t.Errorf("Expected 2 cached images, got %d", c.Len())
	}

	again, err := c.Load("a")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if again == first {
		t.Error("Expected a to be re-rasterized after eviction")
	}
}

func TestCacheHitRefreshesUseOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeIcon(t, dir, name)
	}
	c := NewCacheWithSize(dir, 8, 2)

	a, _ := c.Load("a")
	b, _ := c.Load("b")
	c.Load("a") // a becomes most recently used
	c.Load("c") // evicts b, not a

	if again, _ := c.Load("a"); again != a {
		t.Error("Expected a to survive eviction after a fresh hit")
	}
	if again, _ := c.Load("b"); again == b {
		t.Error("Expected b to have been evicted")
	}
}

func TestCachePurge(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "check")
	c := NewCache(dir, 16)

	first, _ := c.Load("check")
	c.Purge()

	if c.Len() != 0 {
		t.Errorf("Expected an empty cache after Purge, got %d", c.Len())
	}
	if again, _ := c.Load("check"); again == first {
		t.Error("Expected a fresh rasterization after Purge")
	}
}
