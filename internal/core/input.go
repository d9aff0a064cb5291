package core

// Action represents a semantic sketch pad action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionNormal           // N - flat-color paint mode
	ActionRainbow          // R - random-color paint mode
	ActionDarken           // D - progressive darkening mode
	ActionClear            // C - reset every cell to white
	ActionResize           // G - prompt for a new grid size
	ActionPickColor        // P - prompt for the current color
	ActionYank             // Y - copy the color under the pointer
	ActionTheme            // T - switch to the next chrome theme
	ActionHelp             // ? - toggle full help
	ActionConfirm          // Enter - accept prompt input
	ActionBack             // Esc - dismiss prompt or alert
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNormal:
		return "Normal"
	case ActionRainbow:
		return "Rainbow"
	case ActionDarken:
		return "Darken"
	case ActionClear:
		return "Clear"
	case ActionResize:
		return "Resize"
	case ActionPickColor:
		return "PickColor"
	case ActionYank:
		return "Yank"
	case ActionTheme:
		return "Theme"
	case ActionHelp:
		return "Help"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
