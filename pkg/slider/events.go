package slider

// Callbacks is the event contract between the engine and its host. Every
// field is optional; nil callbacks are skipped. Slices passed to callbacks
// are fresh copies the host may retain.
type Callbacks struct {
	// OnChange fires on every committed (or, in controlled mode, proposed)
	// value update, including interim updates during a drag.
	OnChange func(values []float64)

	// OnChangeEnd fires exactly once per discrete interaction: once per
	// keypress and once per drag session, carrying the final committed
	// values. Intended for expensive downstream work that should not run
	// on every pointer move.
	OnChangeEnd func(values []float64)

	// OnFocus fires when the engine enters the focused state.
	OnFocus func()

	// OnBlur fires when the engine returns to idle.
	OnBlur func()

	// OnDragStart fires when a pointer drag session begins.
	OnDragStart func()

	// OnDragEnd fires when a pointer drag session ends, on every exit path.
	OnDragEnd func()
}

func (c Callbacks) emitChange(values []float64) {
	if c.OnChange != nil {
		c.OnChange(values)
	}
}

func (c Callbacks) emitChangeEnd(values []float64) {
	if c.OnChangeEnd != nil {
		c.OnChangeEnd(values)
	}
}

func (c Callbacks) emitFocus() {
	if c.OnFocus != nil {
		c.OnFocus()
	}
}

func (c Callbacks) emitBlur() {
	if c.OnBlur != nil {
		c.OnBlur()
	}
}

func (c Callbacks) emitDragStart() {
	if c.OnDragStart != nil {
		c.OnDragStart()
	}
}

func (c Callbacks) emitDragEnd() {
	if c.OnDragEnd != nil {
		c.OnDragEnd()
	}
}
