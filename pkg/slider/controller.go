package slider

import (
	"math"
)

// DefaultMoveThreshold is the minimum change in track percentage between two
// emitted drag updates. Moves below the threshold are dropped to bound update
// volume; no time-based debouncing is applied, so visual latency stays at one
// event.
const DefaultMoveThreshold = 0.1

// CommitFunc applies an interaction candidate for a single thumb and returns
// the full value slice the engine should report. The engine installs a
// committing implementation in uncontrolled mode and a propose-only
// implementation in controlled mode.
type CommitFunc func(index int, value float64) []float64

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	// Commit applies candidates. When nil the controller mutates its
	// ThumbSet directly.
	Commit CommitFunc

	// Bind registers host pointer listeners for the lifetime of each drag
	// session. Optional.
	Bind ListenerBinder

	// MoveThreshold overrides DefaultMoveThreshold when > 0.
	MoveThreshold float64

	// Disabled suppresses all input handling.
	Disabled bool

	// ReadOnly suppresses all input handling while still allowing external
	// value updates to move the rendered position.
	ReadOnly bool

	Callbacks Callbacks
}

// Controller is the interaction state machine. It consumes pointer and
// keyboard input, maps it through a PointerMapper, applies candidates to the
// ThumbSet it owns (or proposes them through a CommitFunc) and emits the
// change/changeEnd event pairs of the public contract.
//
// States are cyclic: Idle -> Focused -> Dragging -> Focused -> Idle. A
// pointerdown while idle focuses implicitly, mirroring how platform pointer
// input focuses an element before dragging it.
type Controller struct {
	mapper    PointerMapper
	thumbs    *ThumbSet
	commit    CommitFunc
	bind      ListenerBinder
	callbacks Callbacks
	threshold float64
	disabled  bool
	readOnly  bool

	state   State
	focus   int
	session *dragSession

	// lastCommitted is the most recent slice returned by commit during the
	// live drag session; it backs changeEnd on cancellation paths.
	lastCommitted []float64
}

// NewController creates a controller over the given mapper and thumb set.
func NewController(mapper PointerMapper, thumbs *ThumbSet, opts ControllerOptions) *Controller {
	commit := opts.Commit
	if commit == nil {
		commit = func(index int, value float64) []float64 {
			thumbs.Set(index, value)
			return thumbs.Values()
		}
	}
	threshold := opts.MoveThreshold
	if threshold <= 0 {
		threshold = DefaultMoveThreshold
	}
	return &Controller{
		mapper:    mapper,
		thumbs:    thumbs,
		commit:    commit,
		bind:      opts.Bind,
		callbacks: opts.Callbacks,
		threshold: threshold,
		disabled:  opts.Disabled,
		readOnly:  opts.ReadOnly,
		state:     StateIdle,
	}
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// FocusedIndex returns the index of the focused thumb, or -1 when idle.
func (c *Controller) FocusedIndex() int {
	if c.state == StateIdle {
		return -1
	}
	return c.focus
}

// DraggingIndex returns the thumb owned by the live drag session, if any.
func (c *Controller) DraggingIndex() (int, bool) {
	if c.state != StateDragging {
		return 0, false
	}
	return c.session.index, true
}

// Focus gives keyboard focus to thumb i. Out-of-range indexes clamp to the
// nearest valid thumb. Ignored while a drag session is live.
func (c *Controller) Focus(i int) {
	if c.inputSuppressed() || c.state == StateDragging {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= c.thumbs.Len() {
		i = c.thumbs.Len() - 1
	}
	c.focus = i
	if c.state == StateIdle {
		c.state = StateFocused
		c.callbacks.emitFocus()
	}
}

// Blur drops focus and returns to idle. A live drag session is cancelled
// first so the listener release and changeEnd guarantees hold on this exit
// path too.
func (c *Controller) Blur() {
	if c.inputSuppressed() {
		return
	}
	if c.state == StateDragging {
		c.endDrag(c.sessionValues())
	}
	if c.state == StateFocused {
		c.state = StateIdle
		c.callbacks.emitBlur()
	}
}

// KeyDown processes one key event. Each recognized key yields exactly one
// committed value and one change + changeEnd pair; unrecognized keys yield
// nothing. Keys are only handled in the focused state.
func (c *Controller) KeyDown(k Key) {
	if c.inputSuppressed() || c.state != StateFocused {
		return
	}
	target, ok := k.target(c.mapper.Space(), c.thumbs.Value(c.focus))
	if !ok {
		return
	}
	values := c.commit(c.focus, target)
	c.callbacks.emitChange(values)
	c.callbacks.emitChangeEnd(values)
}

// PointerDown starts a drag session. The mapped value picks the nearest
// thumb (ties to the lowest index) and moves it immediately, so a bare track
// click and a press on a thumb share one code path. A second pointerdown
// while a session is live is ignored, as are malformed coordinates.
func (c *Controller) PointerDown(pos float64, track TrackGeometry) {
	if c.inputSuppressed() || c.state == StateDragging {
		return
	}
	if !isFinite(pos) || !track.IsValid() {
		return
	}

	mapped := c.mapper.ValueAt(pos, track)
	index := c.thumbs.Nearest(mapped)

	if c.state == StateIdle {
		c.callbacks.emitFocus()
	}
	c.focus = index
	c.state = StateDragging
	c.session = beginDragSession(index, c.mapper.Space().ToPercentage(mapped), c.bind)
	c.callbacks.emitDragStart()

	c.lastCommitted = c.commit(index, mapped)
	c.callbacks.emitChange(c.lastCommitted)
}

// PointerMove recomputes the dragged thumb from the new pointer position.
// An update is only committed and emitted when the computed percentage
// differs from the last emitted one by at least the move threshold.
// Malformed coordinates are dropped without disturbing the session.
func (c *Controller) PointerMove(pos float64, track TrackGeometry) {
	if c.state != StateDragging {
		return
	}
	if !isFinite(pos) || !track.IsValid() {
		return
	}

	mapped := c.mapper.ValueAt(pos, track)
	pct := c.mapper.Space().ToPercentage(mapped)
	if math.Abs(pct-c.session.lastPct) < c.threshold {
		return
	}

	c.session.lastPct = pct
	c.lastCommitted = c.commit(c.session.index, mapped)
	c.callbacks.emitChange(c.lastCommitted)
}

// PointerUp commits the final pointer position (threshold-free) and ends the
// drag session with a single changeEnd. A release outside the track bounds
// clamps like any other position; a release with malformed coordinates still
// ends the session with the last valid value, so the machine can never stay
// stuck in the dragging state.
func (c *Controller) PointerUp(pos float64, track TrackGeometry) {
	if c.state != StateDragging {
		return
	}

	values := c.sessionValues()
	if isFinite(pos) && track.IsValid() {
		mapped := c.mapper.ValueAt(pos, track)
		values = c.commit(c.session.index, mapped)
	}
	c.endDrag(values)
}

// PointerCancel aborts the drag session, emitting changeEnd with the last
// valid committed values.
func (c *Controller) PointerCancel() {
	if c.state != StateDragging {
		return
	}
	c.endDrag(c.sessionValues())
}

// Teardown releases any live drag session and resets the machine to idle.
// The host calls it when the slider unmounts; it upholds the same listener
// release and changeEnd guarantees as the pointer exit paths.
func (c *Controller) Teardown() {
	if c.state == StateDragging {
		c.endDrag(c.sessionValues())
	}
	if c.state == StateFocused {
		c.callbacks.emitBlur()
	}
	c.state = StateIdle
	c.lastCommitted = nil
}

// endDrag performs the Dragging -> Focused transition: release listeners,
// emit the session's single changeEnd, then dragEnd.
func (c *Controller) endDrag(values []float64) {
	c.focus = c.session.index
	c.session.end()
	c.session = nil
	c.state = StateFocused
	c.callbacks.emitChangeEnd(values)
	c.callbacks.emitDragEnd()
	c.lastCommitted = nil
}

// sessionValues returns the values changeEnd should carry when the session
// ends without a final valid pointer position.
func (c *Controller) sessionValues() []float64 {
	if c.lastCommitted != nil {
		out := make([]float64, len(c.lastCommitted))
		copy(out, c.lastCommitted)
		return out
	}
	return c.thumbs.Values()
}

func (c *Controller) inputSuppressed() bool {
	return c.disabled || c.readOnly
}
