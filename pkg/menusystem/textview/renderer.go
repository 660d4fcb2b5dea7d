// Package textview renders menus as styled text rows, suitable for
// terminals and any other io.Writer sink.
package textview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/CDFER/menusystem/pkg/menusystem"
	"github.com/CDFER/menusystem/pkg/menusystem/constants"
)

// Styles controls how each part of a menu screen is drawn.
type Styles struct {
	Title   lipgloss.Style // Menu name heading
	Row     lipgloss.Style // Unfocused rows
	Focused lipgloss.Style // The row under the cursor
}

// DefaultStyles returns the renderer's standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00d7ff")),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c0c0")),
		Focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#00d7ff")),
	}
}

// Renderer draws menus as text rows on an io.Writer, one line per child
// with the focused row highlighted. It implements menusystem.Renderer and
// never mutates navigation state.
type Renderer struct {
	w      io.Writer
	styles Styles
	plain  bool
}

// New creates a renderer writing styled rows to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles()}
}

// WithStyles replaces the style set and returns the renderer.
func (r *Renderer) WithStyles(s Styles) *Renderer {
	r.styles = s
	return r
}

// WithPlainText disables styling, for dumb sinks like log files and tests.
func (r *Renderer) WithPlainText() *Renderer {
	r.plain = true
	return r
}

// Render draws the menu as the active screen: a title line, then each
// child dispatched back through its own Render to pick the row shape for
// its kind.
func (r *Renderer) Render(menu *menusystem.Menu) {
	title := menu.Name()
	if title == "" {
		title = "Menu"
	}
	fmt.Fprintln(r.w, r.style(r.styles.Title, title))

	for i := 0; i < menu.Count(); i++ {
		menu.Component(i).Render(r)
	}
}

// RenderItem draws a plain item row.
func (r *Renderer) RenderItem(item *menusystem.Item) {
	fmt.Fprintln(r.w, r.rowText(item, item.Name(), ""))
}

// RenderBackItem draws a back item row with the back glyph.
func (r *Renderer) RenderBackItem(item *menusystem.BackItem) {
	fmt.Fprintln(r.w, r.rowText(item, item.Name(), constants.Back))
}

// RenderNumericItem draws a numeric row with its formatted value and the
// adjustable-value glyph.
func (r *Renderer) RenderNumericItem(item *menusystem.NumericItem) {
	label := item.Name() + "  " + item.FormattedValue()
	fmt.Fprintln(r.w, r.rowText(item, label, constants.Adjust))
}

// RenderMenu draws a menu appearing as a row inside its parent, marked
// with the sub-menu glyph.
func (r *Renderer) RenderMenu(menu *menusystem.Menu) {
	fmt.Fprintln(r.w, r.rowText(menu, menu.Name(), constants.SubMenu))
}

// rowText lays out one child row: cursor marker, optional icon, label,
// and a trailing kind glyph.
func (r *Renderer) rowText(c menusystem.Component, label, glyph string) string {
	marker := "  "
	if c.HasFocus() {
		marker = "> "
	}

	line := marker
	if icon := c.Icon(); icon != "" {
		line += icon + " "
	}
	line += label
	if glyph != "" {
		line += " " + glyph
	}

	if c.HasFocus() {
		return r.style(r.styles.Focused, line)
	}
	return r.style(r.styles.Row, line)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}
