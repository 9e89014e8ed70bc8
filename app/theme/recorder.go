package theme

import "sync"

// Recorder is a StyleSink keeping the last applied styles, for hosts that render after the fact.
type Recorder struct {
	mu      sync.RWMutex
	styles  Styles
	applied int
}

// Apply records the styles.
func (r *Recorder) Apply(s Styles) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles = s
	r.applied++
}

// Styles returns the last applied styles, the zero value if nothing was applied yet.
func (r *Recorder) Styles() Styles {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.styles
}

// Applied returns how many times styles were applied.
func (r *Recorder) Applied() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.applied
}
