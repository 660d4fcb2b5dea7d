package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quasilyte/gdata"
	"go.uber.org/atomic"

	"github.com/CDFER/menusystem/pkg/menusystem"
	"github.com/CDFER/menusystem/pkg/menusystem/internal"
)

// ErrNoSnapshot indicates no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("state: no saved snapshot")

// DefaultFlushInterval is how often the autoflush goroutine checks for a
// queued snapshot.
const DefaultFlushInterval = 2 * time.Second

const snapshotItem = "menu_state"

// Store persists snapshots in the platform's application data directory.
//
// Navigation code runs Record after each input; the autoflush goroutine
// writes the newest queued snapshot at most once per interval, keeping
// flash-backed targets from being hammered on every cursor move. Record is
// the only method that touches the menu tree, so it must be called from
// the goroutine that owns the tree; everything else is safe anywhere.
type Store struct {
	m *gdata.Manager

	dirty   atomic.Bool
	pending atomic.Pointer[Snapshot]

	stop chan struct{}
	done chan struct{}
}

// Open creates a store for the given application name.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("state: open data manager: %w", err)
	}
	return &Store{m: m}, nil
}

// Save writes a snapshot immediately.
func (s *Store) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("state: encode snapshot: %w", err)
	}
	if err := s.m.SaveItem(snapshotItem, data); err != nil {
		return fmt.Errorf("state: save snapshot: %w", err)
	}
	return nil
}

// Load reads the last saved snapshot, or ErrNoSnapshot when none exists.
func (s *Store) Load() (Snapshot, error) {
	var snap Snapshot
	data, err := s.m.LoadItem(snapshotItem)
	if err != nil {
		return snap, fmt.Errorf("state: load snapshot: %w", err)
	}
	if len(data) == 0 {
		return snap, ErrNoSnapshot
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("state: decode snapshot: %w", err)
	}
	return snap, nil
}

// Record captures the system's state and queues it for the next flush.
// Call it from the goroutine that owns the menu tree.
func (s *Store) Record(sys *menusystem.System) {
	snap := Capture(sys)
	s.pending.Store(&snap)
	s.dirty.Store(true)
}

// StartAutoFlush starts the goroutine that persists queued snapshots,
// checking every interval (DefaultFlushInterval when interval is zero or
// negative). Call Stop to flush the final state and halt it.
func (s *Store) StartAutoFlush(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.flushLoop(interval)
}

// Stop halts the autoflush goroutine after one final flush. Only valid
// after StartAutoFlush.
func (s *Store) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Store) flushLoop(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush()
		case <-s.stop:
			s.flush()
			return
		}
	}
}

func (s *Store) flush() {
	if !s.dirty.Swap(false) {
		return
	}
	snap := s.pending.Load()
	if snap == nil {
		return
	}
	if err := s.Save(*snap); err != nil {
		internal.GetInternalLogger().Error("snapshot flush failed", "error", err)
	}
}
