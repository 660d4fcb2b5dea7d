package state

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// newTestStore isolates the platform data directory inside the test's temp
// dir so snapshots never land in the real user profile.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	for env, sub := range map[string]string{
		"HOME":            "home",
		"XDG_CONFIG_HOME": "config",
		"XDG_DATA_HOME":   "data",
	} {
		path := filepath.Join(dir, sub)
		if err := os.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("Failed to create %s dir: %v", env, err)
		}
		t.Setenv(env, path)
	}

	s, err := Open("menusystem-test")
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	return s
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	saved := Snapshot{
		ActivePath: []int{1, 0},
		Cursors:    map[string]int{"": 1, "Settings": 2},
		Values:     map[string]float64{"Settings/Brightness": 7.5},
	}
	if err := s.Save(saved); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("Loaded snapshot differs:\n got %+v\nwant %+v", loaded, saved)
	}
}

func TestStoreLoadWithoutSnapshot(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	if !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Expected ErrNoSnapshot, got %v", err)
	}
}

func TestStoreFlushPersistsLatestRecord(t *testing.T) {
	s := newTestStore(t)
	sys, brightness, _ := testTree()

	brightness.SetValue(2)
	s.Record(sys)
	brightness.SetValue(9)
	s.Record(sys)

	s.flush()

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded.Values["Settings/Brightness"] != 9 {
		t.Errorf("Expected the newest record to win, got %v", loaded.Values["Settings/Brightness"])
	}
}

func TestStoreFlushWithoutRecordIsNoOp(t *testing.T) {
	s := newTestStore(t)

	s.flush()

	if _, err := s.Load(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Expected ErrNoSnapshot after an empty flush, got %v", err)
	}
}

func TestStoreFlushClearsDirtyFlag(t *testing.T) {
	s := newTestStore(t)
	sys, _, _ := testTree()

	s.Record(sys)
	s.flush()

	if s.dirty.Load() {
		t.Error("Expected the dirty flag cleared after a flush")
	}
}

func TestStoreStopFlushesFinalState(t *testing.T) {
	s := newTestStore(t)
	sys, brightness, _ := testTree()

	// A long interval keeps the ticker out of the picture; the final
	// flush happens in Stop.
	s.StartAutoFlush(time.Hour)
	brightness.SetValue(4)
	s.Record(sys)
	s.Stop()

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded.Values["Settings/Brightness"] != 4 {
		t.Errorf("Expected brightness 4 after Stop, got %v", loaded.Values["Settings/Brightness"])
	}
}
