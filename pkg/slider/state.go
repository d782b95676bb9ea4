package slider

// State identifies the interaction state of an engine instance. It is
// transient and never persisted; a fresh engine always starts Idle.
type State uint8

const (
	// StateIdle means no thumb is focused and no drag is in progress.
	StateIdle State = iota
	// StateFocused means a thumb has keyboard focus.
	StateFocused
	// StateDragging means a pointer drag session owns a thumb.
	StateDragging
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}
