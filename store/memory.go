// Package store provides an in-memory shared cell of coagent states for hosts
// that do not bring their own.
package store

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/tailored-agentic-units/coagent/coagent"
)

// Memory is a coagent.StateStore held in process memory. Readers load the
// published snapshot without locking. Writers publish a whole new snapshot
// with compare-and-swap and hold no lock while computing it, so updaters and
// subscribers may read or write the store again.
type Memory struct {
	snapshot    atomic.Pointer[coagent.States]
	writes      atomic.Int64
	mu          sync.Mutex
	subscribers map[int]func(coagent.States)
	nextSub     int
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	m := &Memory{
		subscribers: make(map[int]func(coagent.States)),
	}
	empty := coagent.States{}
	m.snapshot.Store(&empty)
	return m
}

// States returns the published snapshot. Callers must not modify it.
func (m *Memory) States() coagent.States {
	return *m.snapshot.Load()
}

// UpdateStates publishes fn's result as the next snapshot. A nil result
// publishes an empty snapshot. If another write lands while fn runs, fn is
// called again with the newer snapshot, so it should not depend on being
// called once. Subscribers are notified after the swap; with concurrent
// writers notifications may arrive out of order.
func (m *Memory) UpdateStates(fn func(prev coagent.States) coagent.States) {
	var next coagent.States
	for {
		prev := m.snapshot.Load()
		next = fn(*prev)
		if next == nil {
			next = coagent.States{}
		}
		if m.snapshot.CompareAndSwap(prev, &next) {
			break
		}
	}
	m.writes.Add(1)

	m.mu.Lock()
	subs := slices.Collect(maps.Values(m.subscribers))
	m.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
}

// Writes returns the number of snapshot replacements so far.
func (m *Memory) Writes() int {
	return int(m.writes.Load())
}

// Subscribe registers fn to receive every new snapshot. The returned func
// removes the subscription.
func (m *Memory) Subscribe(fn func(coagent.States)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}
