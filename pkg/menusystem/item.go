package menusystem

// Item is a plain selectable leaf. Selecting it invokes the stored callback
// and leaves the active menu unchanged; cursor movement passes it by.
type Item struct {
	component
}

// NewItem creates a leaf item. fn may be nil.
func NewItem(name, icon string, fn SelectFunc) *Item {
	return &Item{component{name: name, icon: icon, selectFn: fn}}
}

// Next reports false: a plain leaf has no cursor to move.
func (i *Item) Next(loop bool) bool { return false }

// Prev reports false: a plain leaf has no cursor to move.
func (i *Item) Prev(loop bool) bool { return false }

// Reset is a no-op: a plain leaf has no navigation state.
func (i *Item) Reset() {}

// Render dispatches to the renderer's plain item entry point.
func (i *Item) Render(r Renderer) { r.RenderItem(i) }

func (i *Item) activate() Selection {
	i.fireSelect(i)
	return Selection{Action: SelectionStay}
}
