// Package tui drives a menu system from terminal input using Bubble Tea.
package tui

import (
	"bytes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CDFER/menusystem/pkg/menusystem"
	"github.com/CDFER/menusystem/pkg/menusystem/state"
	"github.com/CDFER/menusystem/pkg/menusystem/textview"
)

// Options configures the interactive driver.
type Options struct {
	Loop          bool             // Wrap the cursor and numeric values at the ends
	ResetOnSelect bool             // Rewind departed menus when descending
	Styles        *textview.Styles // Replaces the default terminal styles when set
	Store         *state.Store     // Recorded after every input when set
}

// Model runs a menu tree as a Bubble Tea program. Arrow keys move the
// cursor, left and right adjust the focused numeric item in place, enter
// selects, and esc backs out one level.
type Model struct {
	sys  *menusystem.System
	opts Options

	buf      *bytes.Buffer
	renderer *textview.Renderer
	quitting bool
}

// New creates a driver around an existing system. Screens are drawn
// through the driver's own textview renderer, so the system itself may be
// built without one.
func New(sys *menusystem.System, opts Options) Model {
	buf := &bytes.Buffer{}
	renderer := textview.New(buf)
	if opts.Styles != nil {
		renderer = renderer.WithStyles(*opts.Styles)
	}
	return Model{sys: sys, opts: opts, buf: buf, renderer: renderer}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key messages and forwards them to the menu system.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if next, handled, cmd := m.handleQuitKeys(keyMsg.String()); handled {
		return next, cmd
	}

	if next, handled := m.handleCursorKeys(keyMsg.String()); handled {
		return next, nil
	}

	if next, handled := m.handleValueKeys(keyMsg.String()); handled {
		return next, nil
	}

	if next, handled := m.handleSelectionKeys(keyMsg.String()); handled {
		return next, nil
	}

	return m, nil
}

func (m Model) handleQuitKeys(key string) (tea.Model, bool, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		m.record()
		return m, true, tea.Quit
	}
	return m, false, nil
}

func (m Model) handleCursorKeys(key string) (tea.Model, bool) {
	switch key {
	case "up", "k":
		m.sys.Prev(m.opts.Loop)
		m.record()
		return m, true
	case "down", "j":
		m.sys.Next(m.opts.Loop)
		m.record()
		return m, true
	}
	return m, false
}

// handleValueKeys adjusts the focused numeric item in place: left and
// right edit its value without moving the cursor.
func (m Model) handleValueKeys(key string) (tea.Model, bool) {
	item, ok := m.sys.CurrentMenu().CurrentComponent().(*menusystem.NumericItem)
	if !ok {
		return m, false
	}

	switch key {
	case "left", "h":
		item.Prev(m.opts.Loop)
		m.record()
		return m, true
	case "right", "l":
		item.Next(m.opts.Loop)
		m.record()
		return m, true
	}
	return m, false
}

func (m Model) handleSelectionKeys(key string) (tea.Model, bool) {
	switch key {
	case "enter", " ":
		m.sys.Select(m.opts.ResetOnSelect)
		m.record()
		return m, true
	case "esc", "backspace":
		m.sys.Back()
		m.record()
		return m, true
	}
	return m, false
}

// record queues the current state for the store's autoflush, when a store
// is configured.
func (m Model) record() {
	if m.opts.Store != nil {
		m.opts.Store.Record(m.sys)
	}
}

// View renders the current menu screen and the key hints.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff")).MarginTop(1)

	m.buf.Reset()
	m.renderer.Render(m.sys.CurrentMenu())

	return m.buf.String() +
		hintStyle.Render("Navigate: ↑/↓ | Adjust: ←/→ | Select: Enter | Back: Esc | Quit: q") +
		"\n"
}
