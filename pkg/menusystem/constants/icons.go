package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with an icon font.
const (
	SubMenu = "\U000F0142" // Chevron pointing into a sub-menu
	Back    = "\U000F004D" // Arrow pointing back to the parent menu
	Adjust  = "\U000F0E73" // Horizontal arrows for adjustable values
	Check   = "\U000F012C" // Checkmark for applied selections

	Settings   = "\U000F08BB" // Gear icon for settings menus
	Info       = "\U000F02FC" // Circled i for informational items
	Brightness = "\U000F00E0" // Sun icon for brightness controls
	Volume     = "\U000F057E" // Speaker icon for volume controls
)
