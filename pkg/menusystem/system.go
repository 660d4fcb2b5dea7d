package menusystem

import (
	"github.com/CDFER/menusystem/pkg/menusystem/internal"
)

// System is the facade driving a menu tree. It owns an implicit root menu,
// tracks which menu is receiving input, and routes selection results:
// descending into entered sub-menus and ascending on back items.
//
// A System is constructed explicitly and passed around; there is no package
// singleton. It is not safe for concurrent use. Hosts with multiple input
// sources must serialize calls themselves.
type System struct {
	root     *Menu
	current  *Menu
	renderer Renderer
}

// NewSystem creates a system with an empty root menu. The renderer may be
// nil, which turns Display into a no-op; when set it must outlive the
// system.
func NewSystem(renderer Renderer) *System {
	root := NewMenu("", "", nil)
	root.setCurrent(true)
	return &System{root: root, current: root, renderer: renderer}
}

// Root returns the root menu, the anchor for building the tree.
func (s *System) Root() *Menu { return s.root }

// CurrentMenu returns the menu input is currently routed to.
func (s *System) CurrentMenu() *Menu { return s.current }

// Next moves the current menu's cursor forward. Reports whether it moved.
func (s *System) Next(loop bool) bool { return s.current.Next(loop) }

// Prev moves the current menu's cursor backward. Reports whether it moved.
func (s *System) Prev(loop bool) bool { return s.current.Prev(loop) }

// Select activates the current menu's focused child and routes the result:
// an entered sub-menu becomes current, a back item ascends, anything else
// stays put. With reset enabled, descending also rewinds the departed menu
// so returning to it later starts at its first child. Returns the routed
// action.
func (s *System) Select(reset bool) SelectionAction {
	sel := s.current.selectFocused()
	switch sel.Action {
	case SelectionDescend:
		from := s.current
		s.setCurrent(sel.Menu)
		if reset {
			from.rewind()
		}
		internal.GetInternalLogger().Debug("menu descend",
			"from", from.Name(), "to", sel.Menu.Name())
	case SelectionAscend:
		s.Back()
	}
	return sel.Action
}

// Back ascends to the current menu's parent, leaving the parent's cursor
// where it was. Reports false at the root.
func (s *System) Back() bool {
	parent := s.current.Parent()
	if parent == nil {
		return false
	}
	from := s.current
	s.setCurrent(parent)
	internal.GetInternalLogger().Debug("menu ascend",
		"from", from.Name(), "to", parent.Name())
	return true
}

// Reset recursively resets the current menu and all of its descendants.
func (s *System) Reset() {
	s.current.Reset()
	internal.GetInternalLogger().Debug("menu reset", "menu", s.current.Name())
}

// Display renders the current menu through the injected renderer.
func (s *System) Display() {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(s.current)
}

func (s *System) setCurrent(m *Menu) {
	s.current.setCurrent(false)
	s.current = m
	s.current.setCurrent(true)
}
