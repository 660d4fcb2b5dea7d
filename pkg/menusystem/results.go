package menusystem

// SelectionAction represents how the tree responds to a selection.
type SelectionAction int

const (
	SelectionStay    SelectionAction = iota // Handled in place, the active menu is unchanged
	SelectionDescend                        // A sub-menu was entered and becomes the active menu
	SelectionAscend                         // A back item requested the parent menu
)

// String returns a readable name for logging.
func (a SelectionAction) String() string {
	switch a {
	case SelectionStay:
		return "stay"
	case SelectionDescend:
		return "descend"
	case SelectionAscend:
		return "ascend"
	default:
		return "unknown"
	}
}

// Selection is the result of activating a component. Menu is set only when
// Action is SelectionDescend and names the menu to descend into.
type Selection struct {
	Action SelectionAction
	Menu   *Menu
}
