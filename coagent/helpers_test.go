package coagent_test

import (
	"context"
	"sync"
	"testing"

	"github.com/tailored-agentic-units/coagent/coagent"
	"github.com/tailored-agentic-units/coagent/observability"
	"github.com/tailored-agentic-units/coagent/store"
)

type point struct {
	X int `json:"x"`
}

type captureObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureObserver) count(t observability.EventType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRuntime(t *testing.T, opts ...coagent.Option) (*coagent.Runtime, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	cfg := coagent.DefaultConfig()
	cfg.Observer = "noop"

	rt, err := coagent.New(&cfg, mem, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return rt, mem
}
