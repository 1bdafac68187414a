package coagent

import (
	"context"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/tailored-agentic-units/coagent/observability"
)

// trigger is the input an effect depends on. Internal bindings share one
// constant trigger; external bindings are keyed by the content of their
// state.
type trigger struct {
	external bool
	key      Fingerprint
}

func triggerFor[T any](mode Mode, opts Options[T]) trigger {
	if mode != ModeExternal {
		return trigger{}
	}
	key, err := FingerprintOf(opts.State)
	if err != nil {
		key = fallbackFingerprint(opts.State)
	}
	return trigger{external: true, key: key}
}

// fallbackFingerprint keys values with no JSON form (NaN, channels, funcs)
// by their Go-syntax rendering. fmt prints map keys sorted and NaN as "NaN",
// so repeated renders of the same value produce the same key. The prefix
// keeps it apart from canonical fingerprints.
func fallbackFingerprint(v any) Fingerprint {
	return Fingerprint(blake3.Sum256(fmt.Appendf([]byte("go:"), "%T %#v", v, v)))
}

func (t trigger) equal(o trigger) bool {
	return t.external == o.external && t.key == o.key
}

type effect struct {
	mode    Mode
	name    string
	initial any
	value   any
	present bool
	trigger trigger
}

// Binding is one mounted consumer of a named coagent, the equivalent of a
// component instance in the host's render tree. The host calls Render on
// every render and Commit once the render is committed.
//
// A Binding is not safe for concurrent use; it belongs to a single render
// loop.
type Binding[T any] struct {
	rt        *Runtime
	mounted   bool
	committed trigger
	pending   *effect
}

// Bind creates an unmounted binding on rt.
func Bind[T any](rt *Runtime) *Binding[T] {
	return &Binding[T]{rt: rt}
}

// Render reads the coagent named by opts and returns its handle. It never
// writes: any reconciliation is scheduled for the next Commit, replacing an
// effect scheduled by an earlier uncommitted render.
func (b *Binding[T]) Render(opts Options[T]) Handle[T] {
	mode := Classify(opts)
	initial := DefaultState(opts)
	snapshot := b.rt.states.States()

	_, present := snapshot[opts.Name]
	entry := Lookup(snapshot, opts.Name, initial)

	h := Handle[T]{
		Name:     opts.Name,
		NodeName: entry.NodeName,
		ThreadID: entry.ThreadID,
		Running:  entry.Running,
		State:    as[T](entry.State),
		rt:       b.rt,
		initial:  initial,
	}
	if mode == ModeExternal {
		h.State = opts.State
	}

	t := triggerFor(mode, opts)
	if b.mounted && t.equal(b.committed) {
		b.pending = nil
		return h
	}

	b.pending = &effect{
		mode:    mode,
		name:    opts.Name,
		initial: initial,
		value:   opts.State,
		present: present,
		trigger: t,
	}
	return h
}

// Commit runs the effect scheduled by the last Render, if any, and reports
// whether one ran. External bindings push their state into the store.
// Internal bindings seed the store only when the rendered snapshot had no
// entry for the name.
func (b *Binding[T]) Commit() bool {
	e := b.pending
	if e == nil {
		return false
	}
	b.pending = nil
	b.mounted = true
	b.committed = e.trigger

	switch {
	case e.mode == ModeExternal:
		b.rt.apply(e.name, e.initial, constant(e.value), EventEffectSync, "coagent.Commit")
	case !e.present:
		seed := e.initial
		if seed == nil {
			seed = EmptyObject()
		}
		b.rt.apply(e.name, e.initial, constant(seed), EventEffectSeed, "coagent.Commit")
	default:
		b.rt.observer.OnEvent(context.Background(), observability.NewEvent(
			EventEffectSkip, observability.LevelVerbose, "coagent.Commit",
			map[string]any{"name": e.name},
		))
	}
	return true
}

// Pending reports whether a Commit would run an effect.
func (b *Binding[T]) Pending() bool {
	return b.pending != nil
}

// Unmount discards any pending effect. The next Render behaves like a first
// mount.
func (b *Binding[T]) Unmount() {
	b.pending = nil
	b.mounted = false
	b.committed = trigger{}
}

// Use renders opts, commits the resulting effect and renders again, so the
// returned handle reflects the settled store.
func Use[T any](rt *Runtime, opts Options[T]) (Handle[T], error) {
	if err := opts.Validate(); err != nil {
		return Handle[T]{}, err
	}
	b := Bind[T](rt)
	b.Render(opts)
	b.Commit()
	return b.Render(opts), nil
}

func constant(v any) Update {
	return func(any) any { return v }
}
