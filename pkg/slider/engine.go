package slider

import (
	"fmt"

	"github.com/its-just-ui/justui-go/pkg/errors"
)

// Engine is the public face of the interaction engine. It wraps the
// Controller with controlled/uncontrolled value reconciliation and exposes
// the query surface hosts render from.
//
// In uncontrolled mode the engine owns its ThumbSet and mutates it
// synchronously on every interaction step. In controlled mode every
// interaction-computed candidate is reported through OnChange but the
// rendered position only moves when the host re-supplies a value via
// SetValue; if the host never does, the position does not move. That
// determinism is part of the contract, not an optimization.
type Engine struct {
	space      ValueSpace
	thumbs     *ThumbSet
	controller *Controller
	marks      []Mark
	controlled bool
}

// New builds an engine from cfg. Invalid configuration (step <= 0,
// max < min, wrong value arity for the mode) fails immediately with a
// ConfigError; nothing about a constructed engine can fail at runtime.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	space, err := NewValueSpace(cfg.Min, cfg.Max, cfg.Step)
	if err != nil {
		return nil, err
	}

	thumbs := NewThumbSet(space, cfg.initialValues())
	marks := make([]Mark, len(cfg.Marks))
	copy(marks, cfg.Marks)

	e := &Engine{
		space:      space,
		thumbs:     thumbs,
		marks:      marks,
		controlled: cfg.controlled(),
	}

	var commit CommitFunc
	if e.controlled {
		// Propose only: resolve the candidate against the rendered
		// (externally supplied) values without mutating them.
		commit = func(index int, value float64) []float64 {
			out := thumbs.Values()
			out[index] = thumbs.Resolve(index, value)
			return out
		}
	}

	e.controller = NewController(NewPointerMapper(space), thumbs, ControllerOptions{
		Commit:        commit,
		Bind:          cfg.Bind,
		MoveThreshold: cfg.MoveThreshold,
		Disabled:      cfg.Disabled,
		ReadOnly:      cfg.ReadOnly,
		Callbacks:     cfg.Callbacks,
	})
	return e, nil
}

// CurrentValues returns the rendered thumb values in order.
func (e *Engine) CurrentValues() []float64 {
	return e.thumbs.Values()
}

// PercentageOf returns the track percentage of thumb index.
func (e *Engine) PercentageOf(index int) (float64, error) {
	if index < 0 || index >= e.thumbs.Len() {
		return 0, fmt.Errorf("slider: thumb index %d out of range [0,%d)", index, e.thumbs.Len())
	}
	return e.space.ToPercentage(e.thumbs.Value(index)), nil
}

// Space returns the engine's value space, for hosts that render marks or
// derived geometry.
func (e *Engine) Space() ValueSpace {
	return e.space
}

// Marks returns a copy of the informational marks.
func (e *Engine) Marks() []Mark {
	out := make([]Mark, len(e.marks))
	copy(out, e.marks)
	return out
}

// State returns the interaction state.
func (e *Engine) State() State {
	return e.controller.State()
}

// FocusedIndex returns the focused thumb index, or -1 when idle.
func (e *Engine) FocusedIndex() int {
	return e.controller.FocusedIndex()
}

// ThumbCount returns the number of thumbs.
func (e *Engine) ThumbCount() int {
	return e.thumbs.Len()
}

// SetValue supplies an external value. In controlled mode this is the only
// way the rendered position moves; in uncontrolled mode it acts as a
// programmatic set. Values are clamped, quantized and reordered as needed;
// no events are emitted for external supply.
//
// The supply must carry exactly one value per thumb. A mismatched arity is
// rejected with a ValidationError and leaves the rendered values untouched:
// the thumb count is fixed at construction, so a live drag session can never
// observe a shrunken set.
func (e *Engine) SetValue(values ...float64) error {
	if len(values) != e.thumbs.Len() {
		return errors.NewValidationError("values",
			fmt.Sprintf("got %d values for %d thumbs", len(values), e.thumbs.Len()), nil)
	}
	e.thumbs.replace(values)
	return nil
}

// Focus gives keyboard focus to thumb i.
func (e *Engine) Focus(i int) {
	e.controller.Focus(i)
}

// Blur drops focus.
func (e *Engine) Blur() {
	e.controller.Blur()
}

// KeyDown forwards one key event.
func (e *Engine) KeyDown(k Key) {
	e.controller.KeyDown(k)
}

// PointerDown forwards a pointer press with the current track geometry.
func (e *Engine) PointerDown(pos float64, track TrackGeometry) {
	e.controller.PointerDown(pos, track)
}

// PointerMove forwards a pointer move during a drag session.
func (e *Engine) PointerMove(pos float64, track TrackGeometry) {
	e.controller.PointerMove(pos, track)
}

// PointerUp forwards the pointer release that ends a drag session.
func (e *Engine) PointerUp(pos float64, track TrackGeometry) {
	e.controller.PointerUp(pos, track)
}

// PointerCancel aborts a drag session.
func (e *Engine) PointerCancel() {
	e.controller.PointerCancel()
}

// Close tears the engine down: any live drag session is released and the
// state machine returns to idle.
func (e *Engine) Close() {
	e.controller.Teardown()
}
