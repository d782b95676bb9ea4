package slider

// TrackGeometry describes the rendered track on the host's axis: the offset
// of its leading edge and its length, both in host units (pixels, cells).
// The host supplies fresh geometry with every pointer event so the engine
// never caches a stale layout.
type TrackGeometry struct {
	Start  float64
	Length float64
}

// IsValid reports whether the geometry is usable for mapping. A zero-length
// track is valid (it has a defined fallback); a negative or non-finite
// length is not.
func (g TrackGeometry) IsValid() bool {
	return isFinite(g.Start) && isFinite(g.Length) && g.Length >= 0
}

// PointerMapper converts pointer coordinates into values of a ValueSpace.
// It is stateless; construct one per engine and recompute at will.
type PointerMapper struct {
	space ValueSpace
}

// NewPointerMapper creates a mapper over the given space.
func NewPointerMapper(space ValueSpace) PointerMapper {
	return PointerMapper{space: space}
}

// ValueAt maps a pointer position along the track to a quantized value.
// Positions outside the track clamp to the nearest end. A zero-length track
// maps everything to the space minimum rather than dividing by zero.
func (m PointerMapper) ValueAt(pos float64, track TrackGeometry) float64 {
	if track.Length == 0 {
		return m.space.Min()
	}
	return m.space.FromPercentage(100 * (pos - track.Start) / track.Length)
}

// Space returns the underlying value space.
func (m PointerMapper) Space() ValueSpace {
	return m.space
}
