package slider

// Key identifies a keyboard input the engine understands. Hosts translate
// their platform's key identifiers into these before calling KeyDown.
type Key uint8

const (
	// KeyNone is an unrecognized key; it produces no transition.
	KeyNone Key = iota
	// KeyArrowLeft decrements the focused thumb by one step.
	KeyArrowLeft
	// KeyArrowRight increments the focused thumb by one step.
	KeyArrowRight
	// KeyArrowUp increments the focused thumb by one step.
	KeyArrowUp
	// KeyArrowDown decrements the focused thumb by one step.
	KeyArrowDown
	// KeyPageUp increments the focused thumb by ten steps.
	KeyPageUp
	// KeyPageDown decrements the focused thumb by ten steps.
	KeyPageDown
	// KeyHome sets the focused thumb to the space minimum.
	KeyHome
	// KeyEnd sets the focused thumb to the space maximum.
	KeyEnd
)

// pageStepFactor is how many steps a PageUp/PageDown jump covers.
const pageStepFactor = 10

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "none"
	}
}

// target computes the value a keypress moves the focused thumb to, given its
// current value. The second return is false for keys the engine ignores.
func (k Key) target(space ValueSpace, current float64) (float64, bool) {
	step := space.Step()
	switch k {
	case KeyArrowLeft, KeyArrowDown:
		return current - step, true
	case KeyArrowRight, KeyArrowUp:
		return current + step, true
	case KeyPageDown:
		return current - pageStepFactor*step, true
	case KeyPageUp:
		return current + pageStepFactor*step, true
	case KeyHome:
		return space.Min(), true
	case KeyEnd:
		return space.Max(), true
	default:
		return current, false
	}
}
