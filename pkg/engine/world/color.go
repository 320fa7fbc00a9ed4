package world

// Color is a door or key colour. Doors start out Unlocked; a locked door and
// the key that opens it share one of the lock colours.
type Color int

// Colors of the palette
const (
	Red Color = iota
	Green
	LightGreen
	White
	Yellow
	Orange
	Magenta
	Blue
	Cyan
)

// Unlocked is the colour of a door that needs no key.
const Unlocked = Yellow

// LockColors is the palette lock colours are drawn from.
func LockColors() []Color {
	return []Color{White, Blue, Magenta, Cyan, Green, Red}
}

// String returns the string representation of a colour
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case LightGreen:
		return "LightGreen"
	case White:
		return "White"
	case Yellow:
		return "Yellow"
	case Orange:
		return "Orange"
	case Magenta:
		return "Magenta"
	case Blue:
		return "Blue"
	case Cyan:
		return "Cyan"
	default:
		return "Unknown"
	}
}

// IsLock reports whether c is a colour a door can be locked with.
func (c Color) IsLock() bool {
	for _, lc := range LockColors() {
		if lc == c {
			return true
		}
	}
	return false
}
