package coagent

import "github.com/tailored-agentic-units/coagent/session"

// Handle is what a render of a coagent binding hands back to the caller.
// State is the caller's value in external mode and the stored value
// otherwise. The executor-owned fields reflect the stored entry.
type Handle[T any] struct {
	Name     string
	NodeName string
	ThreadID string
	Running  bool
	State    T

	rt      *Runtime
	initial any
}

// SetState writes update's result into the shared store under h.Name. The
// new value is visible on the next render.
func (h Handle[T]) SetState(update Update) {
	h.rt.apply(h.Name, h.initial, update, EventStateSet, "coagent.SetState")
}

// Start makes this coagent the active agent session in slot.
func (h Handle[T]) Start(slot session.Slot) session.Descriptor {
	return h.rt.Sessions(slot).Start(h.Name)
}

// Stop ends the session in slot if this coagent owns it.
func (h Handle[T]) Stop(slot session.Slot) bool {
	return h.rt.Sessions(slot).Stop(h.Name)
}
