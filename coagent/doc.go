// Package coagent exposes named, shared agent state to UI components.
//
// Every coagent is one State entry in a host-owned StateStore, keyed by
// name. A component binds to a coagent in one of three modes:
//
//	coagent.Internal[Doc]("writer")                      // store owns it, starts as {}
//	coagent.InternalWithInitial("counter", Count{N: 0})  // store owns it, seeded once
//	coagent.External("form", form, setForm)              // caller owns it, mirrored
//
// # Render and Commit
//
// Bindings follow the host's render cycle. Render is a pure read: it returns
// a Handle built from the current snapshot and schedules at most one effect.
// Commit runs that effect:
//
//	rt, _ := coagent.New(&cfg, store.NewMemory())
//	b := coagent.Bind[Count](rt)
//
//	h := b.Render(coagent.InternalWithInitial("counter", Count{}))
//	b.Commit() // seeds "counter" on first mount
//
//	h.SetState(coagent.Func(func(c Count) Count { c.N++; return c }))
//
// External bindings re-run their effect only when the content of their
// state changes, compared by Fingerprint rather than identity. Internal
// bindings seed the store the first time they mount against a missing entry
// and never again; a changed initial value on a later render is ignored.
//
// # Snapshots
//
// States snapshots are immutable. Apply and States.With return new maps and
// preserve every field other than State, so executor-owned fields (Running,
// Active, ThreadID, NodeName, RunID) survive writes made here.
//
// # Sessions
//
// Handle.Start and Handle.Stop delegate to a session.Controller on the slot
// passed in. Stopping a session owned by a different agent is reported as a
// warning event and otherwise ignored.
package coagent
