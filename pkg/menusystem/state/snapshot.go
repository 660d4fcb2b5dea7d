// Package state captures and restores the runtime-mutable parts of a menu
// tree: the active menu, every cursor position, and every numeric value.
// Snapshots are plain data keyed by name paths, so they survive process
// restarts as long as the tree is rebuilt with the same shape.
package state

import (
	"fmt"

	"github.com/CDFER/menusystem/pkg/menusystem"
)

// Snapshot is a point-in-time record of a menu tree's navigation state.
// Menus and numeric items are keyed by their name path from the root
// (e.g. "Settings/Brightness"); the root menu's own key is the empty
// string. ActivePath holds the child indices leading from the root to the
// active menu. Siblings sharing a name collide on the same path, so trees
// meant to round-trip should keep sibling names unique.
type Snapshot struct {
	ActivePath []int              `json:"active_path,omitempty"`
	Cursors    map[string]int     `json:"cursors,omitempty"`
	Values     map[string]float64 `json:"values,omitempty"`
}

// Capture records the system's current navigation state.
func Capture(sys *menusystem.System) Snapshot {
	snap := Snapshot{
		Cursors: make(map[string]int),
		Values:  make(map[string]float64),
	}
	snap.ActivePath = activePath(sys)
	captureMenu(sys.Root(), "", &snap)
	return snap
}

// Apply restores a snapshot onto a system whose tree has the same shape it
// was captured from. Values and cursors at unknown paths are skipped.
//
// The active menu is reached by replaying descents through Select, so
// menus along the path fire their on-enter callbacks exactly as if the
// user had navigated there.
func Apply(snap Snapshot, sys *menusystem.System) error {
	for sys.Back() {
	}
	sys.Reset()

	applyValues(sys.Root(), "", snap.Values)

	for _, idx := range snap.ActivePath {
		m := sys.CurrentMenu()
		if _, ok := m.Component(idx).(*menusystem.Menu); !ok {
			return fmt.Errorf("state: child %d of %q is not a menu", idx, m.Name())
		}
		seek(m, idx)
		if sys.Select(false) != menusystem.SelectionDescend {
			return fmt.Errorf("state: could not descend into child %d of %q", idx, m.Name())
		}
	}

	// Descending rewinds each entered menu, so cursors go last.
	applyCursors(sys.Root(), "", snap.Cursors)
	return nil
}

func captureMenu(m *menusystem.Menu, path string, snap *Snapshot) {
	snap.Cursors[path] = m.CurrentIndex()
	for i := 0; i < m.Count(); i++ {
		c := m.Component(i)
		childPath := joinPath(path, c.Name())
		switch v := c.(type) {
		case *menusystem.Menu:
			captureMenu(v, childPath, snap)
		case *menusystem.NumericItem:
			snap.Values[childPath] = v.Value()
		}
	}
}

func applyValues(m *menusystem.Menu, path string, values map[string]float64) {
	for i := 0; i < m.Count(); i++ {
		c := m.Component(i)
		childPath := joinPath(path, c.Name())
		switch v := c.(type) {
		case *menusystem.Menu:
			applyValues(v, childPath, values)
		case *menusystem.NumericItem:
			if val, ok := values[childPath]; ok {
				v.SetValue(val)
			}
		}
	}
}

func applyCursors(m *menusystem.Menu, path string, cursors map[string]int) {
	if idx, ok := cursors[path]; ok {
		seek(m, idx)
	}
	for i := 0; i < m.Count(); i++ {
		if sub, ok := m.Component(i).(*menusystem.Menu); ok {
			applyCursors(sub, joinPath(path, sub.Name()), cursors)
		}
	}
}

// seek walks a menu's cursor to idx through Next and Prev so focus
// bookkeeping stays consistent.
func seek(m *menusystem.Menu, idx int) {
	for m.CurrentIndex() < idx && m.Next(false) {
	}
	for m.CurrentIndex() > idx && m.Prev(false) {
	}
}

// activePath collects the child indices from the root down to the menu
// currently receiving input.
func activePath(sys *menusystem.System) []int {
	var rev []int
	for m := sys.CurrentMenu(); m.Parent() != nil; m = m.Parent() {
		rev = append(rev, childIndex(m.Parent(), m))
	}

	path := make([]int, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

func childIndex(parent, child *menusystem.Menu) int {
	for i := 0; i < parent.Count(); i++ {
		if sub, ok := parent.Component(i).(*menusystem.Menu); ok && sub == child {
			return i
		}
	}
	return 0
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "/" + name
}
