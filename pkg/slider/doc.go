// Package slider implements the continuous value / range interaction engine
// behind the slider family of components.
//
// The engine is a headless, embeddable primitive: it never renders pixels.
// A host forwards raw pointer and keyboard input together with the track
// geometry, and the engine answers with committed values and percentages the
// host renders however it likes (terminal cells, SVG, canvas).
//
// # Layers
//
// The engine is built from small, mostly pure layers:
//
//   - ValueSpace: min/max/step domain model with clamping and quantization
//   - PointerMapper: geometry-to-value conversion on top of a ValueSpace
//   - ThumbSet: ordered value handles with a non-crossing invariant
//   - Controller: the Idle/Focused/Dragging interaction state machine
//   - Engine: controlled/uncontrolled value reconciliation and the public
//     event contract
//
// # Usage
//
//	eng, err := slider.New(slider.Config{
//	    Min:          0,
//	    Max:          100,
//	    Step:         5,
//	    DefaultValue: []float64{50},
//	    Callbacks: slider.Callbacks{
//	        OnChange: func(values []float64) { /* re-render */ },
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	eng.Focus(0)
//	eng.KeyDown(slider.KeyArrowRight)
//	eng.PointerDown(42, slider.TrackGeometry{Start: 0, Length: 80})
//
// # Ownership
//
// An Engine instance is exclusively owned by its host. All input is processed
// synchronously on the caller's goroutine; the engine performs no locking and
// spawns no goroutines. Hosts that receive input on multiple goroutines must
// serialize calls themselves.
package slider
