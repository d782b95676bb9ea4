package slider

// ListenerBinder lets a host register global pointer listeners for the
// duration of a drag session. It is called when the session begins and must
// return the matching release function; the controller guarantees release on
// every exit path: pointerup, pointercancel and teardown.
type ListenerBinder func() (release func())

// dragSession tracks one pointer capture from pointerdown to its release.
// Only one session exists at a time; a second drag-start while a session is
// live is ignored.
type dragSession struct {
	index   int
	lastPct float64
	release func()
}

func beginDragSession(index int, startPct float64, bind ListenerBinder) *dragSession {
	s := &dragSession{index: index, lastPct: startPct}
	if bind != nil {
		s.release = bind()
	}
	return s
}

// end releases the host listeners. Safe to call more than once.
func (s *dragSession) end() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}
