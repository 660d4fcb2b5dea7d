package menusystem

// Menu is the composite component: an ordered list of children with a
// cursor over them. Exactly one child holds focus at any time (when the
// menu is non-empty), and selecting the menu from its parent descends into
// it with the cursor rewound to the first child.
type Menu struct {
	component

	components []Component
	current    int
	previous   int
	parent     *Menu
}

// NewMenu creates an empty menu. fn may be nil; when set it fires as the
// menu is entered from its parent.
func NewMenu(name, icon string, fn SelectFunc) *Menu {
	return &Menu{component: component{name: name, icon: icon, selectFn: fn}}
}

// AddItem appends a component to the menu. The first child added receives
// focus. A *Menu passed here is parented exactly as with AddMenu.
func (m *Menu) AddItem(c Component) {
	m.add(c)
}

// AddMenu appends a child menu, recording m as its parent so back
// navigation can find the way up.
func (m *Menu) AddMenu(sub *Menu) {
	m.add(sub)
}

func (m *Menu) add(c Component) {
	if sub, ok := c.(*Menu); ok {
		sub.parent = m
	}
	m.components = append(m.components, c)
	if len(m.components) == 1 {
		c.setFocus(true)
	}
}

// Count returns the number of children.
func (m *Menu) Count() int { return len(m.components) }

// Component returns the child at index i, or nil when i is out of range.
func (m *Menu) Component(i int) Component {
	if i < 0 || i >= len(m.components) {
		return nil
	}
	return m.components[i]
}

// CurrentIndex returns the index of the focused child.
func (m *Menu) CurrentIndex() int { return m.current }

// PreviousIndex returns the focused index before the last cursor move.
func (m *Menu) PreviousIndex() int { return m.previous }

// CurrentComponent returns the focused child, or nil for an empty menu.
func (m *Menu) CurrentComponent() Component { return m.Component(m.current) }

// Parent returns the owning menu, nil at the root.
func (m *Menu) Parent() *Menu { return m.parent }

// Next moves the cursor to the following child. Past the last child it
// wraps to the first only when loop is enabled. Reports whether the cursor
// moved; menus with fewer than two children never move.
func (m *Menu) Next(loop bool) bool {
	switch {
	case len(m.components) < 2:
		return false
	case m.current < len(m.components)-1:
		m.moveTo(m.current + 1)
		return true
	case loop:
		m.moveTo(0)
		return true
	default:
		return false
	}
}

// Prev moves the cursor to the preceding child, wrapping to the last child
// when loop is enabled. The mirror image of Next.
func (m *Menu) Prev(loop bool) bool {
	switch {
	case len(m.components) < 2:
		return false
	case m.current > 0:
		m.moveTo(m.current - 1)
		return true
	case loop:
		m.moveTo(len(m.components) - 1)
		return true
	default:
		return false
	}
}

// moveTo retargets focus from the current child to index i and records
// where the cursor came from.
func (m *Menu) moveTo(i int) {
	m.components[m.current].setFocus(false)
	m.previous = m.current
	m.current = i
	m.components[m.current].setFocus(true)
}

// Reset rewinds the cursor to the first child and recursively resets every
// descendant menu, so re-entering any sub-menu starts fresh.
func (m *Menu) Reset() {
	m.rewind()
	for _, c := range m.components {
		if sub, ok := c.(*Menu); ok {
			sub.Reset()
		}
	}
}

// rewind puts the cursor back on the first child without touching
// descendant menus.
func (m *Menu) rewind() {
	for _, c := range m.components {
		c.setFocus(false)
	}
	m.current = 0
	m.previous = 0
	if len(m.components) > 0 {
		m.components[0].setFocus(true)
	}
}

// Render dispatches to the renderer's menu entry point. This draws the
// menu as a row inside its parent; the System renders the active screen
// through Renderer.Render instead.
func (m *Menu) Render(r Renderer) { r.RenderMenu(m) }

// selectFocused activates the focused child on behalf of the System. An
// empty menu reports an in-place no-op.
func (m *Menu) selectFocused() Selection {
	c := m.CurrentComponent()
	if c == nil {
		return Selection{Action: SelectionStay}
	}
	return c.activate()
}

// activate is the menu's behavior as a child of its parent: fire the
// on-enter callback, rewind to a fresh first child, and report the descent
// target.
func (m *Menu) activate() Selection {
	m.fireSelect(m)
	m.rewind()
	return Selection{Action: SelectionDescend, Menu: m}
}
