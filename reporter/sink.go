package reporter

import "sync"

// Sink is the append-only, thread-safe diagnostic collection shared by
// every worker in a pipeline run. Push and the query methods are
// linearisable; arrival order across sources under parallel execution is
// unspecified, but a single worker's pushes for one source stay in the
// order it made them.
type Sink struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Push appends d to the sink.
func (s *Sink) Push(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, d)
}

// All returns a snapshot copy of every diagnostic pushed so far, in arrival
// order.
func (s *Sink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

// AnyError reports whether any Error-severity diagnostic has been pushed.
func (s *Sink) AnyError() bool {
	return s.any(Error)
}

// AnyWarning reports whether any Warning-severity diagnostic has been
// pushed.
func (s *Sink) AnyWarning() bool {
	return s.any(Warning)
}

// AnyInfo reports whether any Info-severity diagnostic has been pushed.
func (s *Sink) AnyInfo() bool {
	return s.any(Info)
}

func (s *Sink) any(sev Severity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.diags {
		if d.Severity == sev {
			return true
		}
	}
	return false
}
