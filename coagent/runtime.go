package coagent

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/coagent/observability"
	"github.com/tailored-agentic-units/coagent/session"
)

// StateStore is the host's shared cell of coagent states. UpdateStates must
// replace the snapshot atomically with fn's result; fn must not be retained.
// Implementations may call fn more than once and must allow fn to write the
// store again.
type StateStore interface {
	States() States
	UpdateStates(fn func(prev States) States)
}

// Option configures a Runtime after config-driven initialization.
type Option func(*Runtime)

// WithObserver overrides the observer named in the config. Several
// observers are fanned out through a MultiObserver.
func WithObserver(observers ...observability.Observer) Option {
	return func(rt *Runtime) {
		if len(observers) == 1 {
			rt.observer = observability.OrNoOp(observers[0])
			return
		}
		rt.observer = observability.NewMultiObserver(observers...)
	}
}

// Runtime connects bindings to one shared StateStore.
type Runtime struct {
	states          StateStore
	observer        observability.Observer
	sessionCfg      session.Config
	sessionObserver observability.Observer
}

// New creates a Runtime over states. The config's observers are resolved
// through the observability registry; options are applied afterwards.
func New(cfg *Config, states StateStore, opts ...Option) (*Runtime, error) {
	if states == nil {
		return nil, ErrNilStore
	}

	rt := &Runtime{
		states:     states,
		observer:   observability.NoOpObserver{},
		sessionCfg: cfg.Session,
	}

	if cfg.Observer != "" {
		obs, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		rt.observer = obs
	}

	for _, opt := range opts {
		opt(rt)
	}

	sessionObserver, err := rt.sessionCfg.ResolveObserver(rt.observer)
	if err != nil {
		return nil, err
	}
	rt.sessionObserver = sessionObserver

	return rt, nil
}

// States returns the current shared snapshot.
func (rt *Runtime) States() States {
	return rt.states.States()
}

// Sessions returns a session controller for slot that reports through the
// runtime's session observer.
func (rt *Runtime) Sessions(slot session.Slot) *session.Controller {
	return session.NewController(slot, rt.sessionObserver)
}

func (rt *Runtime) apply(name string, initial any, update Update, event observability.EventType, source string) {
	rt.states.UpdateStates(func(prev States) States {
		return Apply(prev, name, initial, update)
	})

	rt.observer.OnEvent(context.Background(), observability.NewEvent(
		event, observability.LevelVerbose, source,
		map[string]any{"name": name},
	))
}
