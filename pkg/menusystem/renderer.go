package menusystem

// Renderer draws menu components onto some display surface. The core only
// consumes this interface; implementations live outside the navigation
// engine (see the textview package for a terminal one).
//
// Render is the top-level entry point the System calls with the active
// menu. The per-kind entry points are reached by double dispatch when a
// renderer walks the menu's children and asks each one to render itself,
// so renderers never type-switch on components. Renderers must not mutate
// navigation state.
type Renderer interface {
	// Render draws the given menu as the active screen.
	Render(menu *Menu)
	// RenderItem draws a plain item row.
	RenderItem(item *Item)
	// RenderBackItem draws a back item row.
	RenderBackItem(item *BackItem)
	// RenderNumericItem draws a numeric item row with its value.
	RenderNumericItem(item *NumericItem)
	// RenderMenu draws a menu appearing as a row inside its parent.
	RenderMenu(menu *Menu)
}
