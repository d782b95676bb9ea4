package slider

// Mark is an informational label pinned to a value on the track. Marks never
// participate in value computation: they do not snap thumbs, and a mark
// outside [min, max] simply renders clamped to the track edge.
type Mark struct {
	Value float64
	Label string
}
