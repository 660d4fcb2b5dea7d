package menusystem

// BackItem is a leaf that returns to the parent menu when selected. While
// the root menu is active the ascent is a no-op. A stored callback fires
// before the ascent is routed.
type BackItem struct {
	component
}

// NewBackItem creates a back item. fn may be nil.
func NewBackItem(name, icon string, fn SelectFunc) *BackItem {
	return &BackItem{component{name: name, icon: icon, selectFn: fn}}
}

func (b *BackItem) Next(loop bool) bool { return false }

func (b *BackItem) Prev(loop bool) bool { return false }

func (b *BackItem) Reset() {}

// Render dispatches to the renderer's back item entry point.
func (b *BackItem) Render(r Renderer) { r.RenderBackItem(b) }

func (b *BackItem) activate() Selection {
	b.fireSelect(b)
	return Selection{Action: SelectionAscend}
}
