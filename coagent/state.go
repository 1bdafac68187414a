package coagent

import "maps"

// State is the shared record for one named coagent. Only the State field is
// written by this package; Running, Active and the identifiers belong to
// whatever executor drives the agent and are carried through untouched.
// Empty identifier strings mean "not set".
type State struct {
	Name     string `json:"name"`
	State    any    `json:"state"`
	Running  bool   `json:"running"`
	Active   bool   `json:"active"`
	ThreadID string `json:"threadId,omitempty"`
	NodeName string `json:"nodeName,omitempty"`
	RunID    string `json:"runId,omitempty"`
}

// States is a snapshot of every coagent keyed by name. Snapshots are never
// modified after publication; writers build a new map.
type States map[string]State

// Get returns the entry for name, if one has been written.
func (s States) Get(name string) (State, bool) {
	st, ok := s[name]
	return st, ok
}

// With returns a copy of s with entry stored under entry.Name. Executors use
// it to publish Running, Active and identifier changes.
func (s States) With(entry State) States {
	next := maps.Clone(s)
	if next == nil {
		next = make(States, 1)
	}
	next[entry.Name] = entry
	return next
}

// EmptyObject is the default state for a coagent with no initial value.
func EmptyObject() map[string]any {
	return map[string]any{}
}

// Lookup returns the entry for name, or a default entry holding initial when
// the snapshot has none. The default is not written anywhere.
func Lookup(states States, name string, initial any) State {
	if st, ok := states[name]; ok {
		return st
	}
	return State{
		Name:  name,
		State: initial,
	}
}

// Update computes a new state value from the previous one.
type Update func(prev any) any

// Value returns an Update that replaces the state with v.
func Value[T any](v T) Update {
	return func(any) any { return v }
}

// Func returns an Update that applies f to the previous state. prev is the
// zero T when the stored value is missing or not a T.
func Func[T any](f func(prev T) T) Update {
	return func(prev any) any { return f(as[T](prev)) }
}

// Apply returns a new snapshot in which the State field of name holds
// update's result. A missing entry is created from initial first. Every other
// field and every other entry is carried over unchanged; states itself is not
// modified.
func Apply(states States, name string, initial any, update Update) States {
	entry := Lookup(states, name, initial)
	entry.State = update(entry.State)
	return states.With(entry)
}

func as[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	var zero T
	return zero
}
