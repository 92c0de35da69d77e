package slayin

// EventSink receives the discrete notifications a session emits.
// The engine never formats text; sinks decide how to present these.
type EventSink interface {
	Hit(remainingHealth int)
	Healed(newHealth int)
	Slain(newScore int)
	SessionEnded(elapsedSeconds float64, finalScore int)
}

// ConfigReporter is implemented by sinks that want to hear about a config
// that could not be loaded. The game falls back to the built-in defaults.
type ConfigReporter interface {
	ConfigFailed(err error)
}

// reportConfigError passes err to sink if it is a ConfigReporter.
func reportConfigError(sink EventSink, err error) {
	if r, ok := sink.(ConfigReporter); ok {
		r.ConfigFailed(err)
	}
}

// EventKind tags a recorded notification.
type EventKind int

const (
	EventHit EventKind = iota
	EventHealed
	EventSlain
	EventSessionEnded
)

// String returns the notification name.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "Hit"
	case EventHealed:
		return "Healed"
	case EventSlain:
		return "Slain"
	case EventSessionEnded:
		return "SessionEnded"
	default:
		return "Unknown"
	}
}

// Event is one recorded notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Health  int     // Hit, Healed
	Score   int     // Slain, SessionEnded
	Elapsed float64 // SessionEnded
}

// Recorder is an EventSink that keeps every notification in order.
type Recorder struct {
	Events []Event
}

// Hit records a Hit notification.
func (r *Recorder) Hit(remainingHealth int) {
	r.Events = append(r.Events, Event{Kind: EventHit, Health: remainingHealth})
}

// Healed records a Healed notification.
func (r *Recorder) Healed(newHealth int) {
	r.Events = append(r.Events, Event{Kind: EventHealed, Health: newHealth})
}

// Slain records a Slain notification.
func (r *Recorder) Slain(newScore int) {
	r.Events = append(r.Events, Event{Kind: EventSlain, Score: newScore})
}

// SessionEnded records a SessionEnded notification.
func (r *Recorder) SessionEnded(elapsedSeconds float64, finalScore int) {
	r.Events = append(r.Events, Event{Kind: EventSessionEnded, Elapsed: elapsedSeconds, Score: finalScore})
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Event, bool) {
	if len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}

// Count returns how many notifications of a kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Fanout forwards every notification to each non-nil sink in order.
type Fanout []EventSink

func (f Fanout) Hit(remainingHealth int) {
	for _, s := range f {
		if s != nil {
			s.Hit(remainingHealth)
		}
	}
}

func (f Fanout) Healed(newHealth int) {
	for _, s := range f {
		if s != nil {
			s.Healed(newHealth)
		}
	}
}

func (f Fanout) Slain(newScore int) {
	for _, s := range f {
		if s != nil {
			s.Slain(newScore)
		}
	}
}

func (f Fanout) SessionEnded(elapsedSeconds float64, finalScore int) {
	for _, s := range f {
		if s != nil {
			s.SessionEnded(elapsedSeconds, finalScore)
		}
	}
}

// ConfigFailed forwards to each sink that is a ConfigReporter.
func (f Fanout) ConfigFailed(err error) {
	for _, s := range f {
		reportConfigError(s, err)
	}
}

// discard drops every notification.
type discard struct{}

func (discard) Hit(int)                   {}
func (discard) Healed(int)                {}
func (discard) Slain(int)                 {}
func (discard) SessionEnded(float64, int) {}
