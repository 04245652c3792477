package observe

// Recorder is an ordered, append-only record of the component instances
// produced by wrapped builders. One recorder is shared by every builder
// wrapped against it; create one per test session and inject it.
//
// The recorder is deliberately unsynchronized: the corpus scan and the
// bundled executor run sequentially. A runner that executes units
// concurrently must give each unit its own recorder or serialize access.
type Recorder struct {
	components []any
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append records one produced component instance.
func (r *Recorder) Append(component any) {
	r.components = append(r.components, component)
}

// Components returns the recorded instances in production order. The slice is
// shared with the recorder; callers must not mutate it.
func (r *Recorder) Components() []any {
	return r.components
}

// Len returns the number of recorded instances.
func (r *Recorder) Len() int {
	return len(r.components)
}

// Clear empties the record in place. It never happens automatically; the
// caller decides the reset point between independent runs, and may call it
// any number of times.
func (r *Recorder) Clear() {
	r.components = r.components[:0]
}
