package menusystem

// SelectFunc is the callback invoked when a component is selected. It
// receives the component that fired so one function can serve several
// items. Callbacks run synchronously on the input path and should return
// promptly.
type SelectFunc func(Component)

// Component is a node in a menu tree: a selectable leaf or a nested Menu.
//
// The variant set is closed. Item, BackItem, NumericItem, and Menu are the
// only implementations; the selection and focus protocol is unexported so
// external types cannot join the tree. Consumers drive the tree through
// System and inspect nodes through the exported accessors.
type Component interface {
	// Name returns the display name.
	Name() string
	// SetName replaces the display name.
	SetName(name string)
	// Icon returns the display icon, either a glyph code point or an
	// icon asset name, depending on the renderer in use.
	Icon() string
	// SetSelectFunc installs the selection callback. A nil callback is
	// valid and means no action.
	SetSelectFunc(fn SelectFunc)

	// HasFocus reports whether this component is the cursor target
	// within its parent menu.
	HasFocus() bool
	// IsCurrent reports whether this component is the menu input is
	// routed to. Always false for leaf components.
	IsCurrent() bool

	// Next advances whatever cursor the component has and reports
	// whether anything changed. Menus move focus between children,
	// numeric items step their value, plain leaves report false.
	Next(loop bool) bool
	// Prev is the mirror image of Next.
	Prev(loop bool) bool
	// Reset restores the component's initial navigation state.
	Reset()

	// Render draws the component through the renderer entry point
	// matching its concrete kind.
	Render(r Renderer)

	activate() Selection
	setFocus(focus bool)
	setCurrent(current bool)
}

// component holds the identity and focus bookkeeping shared by every kind.
type component struct {
	name     string
	icon     string
	selectFn SelectFunc

	hasFocus  bool
	isCurrent bool
}

func (c *component) Name() string { return c.name }
func (c *component) Icon() string { return c.icon }

func (c *component) SetName(name string) { c.name = name }

func (c *component) SetSelectFunc(fn SelectFunc) { c.selectFn = fn }

func (c *component) HasFocus() bool  { return c.hasFocus }
func (c *component) IsCurrent() bool { return c.isCurrent }

func (c *component) setFocus(focus bool)     { c.hasFocus = focus }
func (c *component) setCurrent(current bool) { c.isCurrent = current }

// fireSelect invokes the stored callback with the concrete component.
func (c *component) fireSelect(self Component) {
	if c.selectFn != nil {
		c.selectFn(self)
	}
}
