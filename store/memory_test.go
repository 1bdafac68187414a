package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/tailored-agentic-units/coagent/coagent"
	"github.com/tailored-agentic-units/coagent/store"
)

func TestMemory_New(t *testing.T) {
	m := store.NewMemory()

	if got := m.States(); got == nil || len(got) != 0 {
		t.Errorf("new store should hold an empty snapshot, got %v", got)
	}
	if m.Writes() != 0 {
		t.Errorf("got %d writes, want 0", m.Writes())
	}
}

func TestMemory_UpdateStates(t *testing.T) {
	m := store.NewMemory()

	m.UpdateStates(func(prev coagent.States) coagent.States {
		return coagent.Apply(prev, "a", coagent.EmptyObject(), coagent.Value(1))
	})

	st, ok := m.States().Get("a")
	if !ok {
		t.Fatal("entry a missing after update")
	}
	if st.State != 1 {
		t.Errorf("got state %v, want 1", st.State)
	}
	if m.Writes() != 1 {
		t.Errorf("got %d writes, want 1", m.Writes())
	}
}

func TestMemory_SnapshotsAreStable(t *testing.T) {
	m := store.NewMemory()
	before := m.States()

	m.UpdateStates(func(prev coagent.States) coagent.States {
		return prev.With(coagent.State{Name: "a", State: "x"})
	})

	if _, ok := before.Get("a"); ok {
		t.Error("earlier snapshot observed a later write")
	}
	if _, ok := m.States().Get("a"); !ok {
		t.Error("current snapshot missing write")
	}
}

func TestMemory_NilResultBecomesEmpty(t *testing.T) {
	m := store.NewMemory()
	m.UpdateStates(func(coagent.States) coagent.States { return nil })

	if m.States() == nil {
		t.Error("snapshot should never be nil")
	}
}

func TestMemory_Subscribe(t *testing.T) {
	m := store.NewMemory()

	var seen []coagent.States
	cancel := m.Subscribe(func(s coagent.States) {
		seen = append(seen, s)
	})

	m.UpdateStates(func(prev coagent.States) coagent.States {
		return prev.With(coagent.State{Name: "a"})
	})
	cancel()
	m.UpdateStates(func(prev coagent.States) coagent.States {
		return prev.With(coagent.State{Name: "b"})
	})

	if len(seen) != 1 {
		t.Fatalf("got %d notifications, want 1", len(seen))
	}
	if _, ok := seen[0].Get("a"); !ok {
		t.Error("notification did not carry the new snapshot")
	}
}

func TestMemory_SubscriberMayWrite(t *testing.T) {
	m := store.NewMemory()

	echoed := false
	m.Subscribe(func(coagent.States) {
		if echoed {
			return
		}
		echoed = true
		m.UpdateStates(func(prev coagent.States) coagent.States {
			return prev.With(coagent.State{Name: "echo"})
		})
	})

	m.UpdateStates(func(prev coagent.States) coagent.States {
		return prev.With(coagent.State{Name: "a"})
	})

	if _, ok := m.States().Get("echo"); !ok {
		t.Error("write from subscriber was lost")
	}
	if m.Writes() != 2 {
		t.Errorf("got %d writes, want 2", m.Writes())
	}
}

func TestMemory_UpdaterMayWrite(t *testing.T) {
	m := store.NewMemory()

	done := make(chan struct{})
	go func() {
		defer close(done)
		nested := false
		m.UpdateStates(func(prev coagent.States) coagent.States {
			if !nested {
				nested = true
				m.UpdateStates(func(prev coagent.States) coagent.States {
					return prev.With(coagent.State{Name: "inner"})
				})
			}
			return prev.With(coagent.State{Name: "outer"})
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("UpdateStates deadlocked on a nested write")
	}

	for _, name := range []string{"inner", "outer"} {
		if _, ok := m.States().Get(name); !ok {
			t.Errorf("entry %q missing", name)
		}
	}
	if m.Writes() != 2 {
		t.Errorf("got %d writes, want 2", m.Writes())
	}
}

func TestMemory_Concurrent(t *testing.T) {
	m := store.NewMemory()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for range n {
		go func() {
			defer wg.Done()
			m.UpdateStates(func(prev coagent.States) coagent.States {
				return coagent.Apply(prev, "counter", 0, coagent.Func(func(c int) int { return c + 1 }))
			})
		}()
		go func() {
			defer wg.Done()
			_ = m.States()
		}()
	}
	wg.Wait()

	st, _ := m.States().Get("counter")
	if st.State != n {
		t.Errorf("got counter %v, want %d", st.State, n)
	}
	if m.Writes() != n {
		t.Errorf("got %d writes, want %d", m.Writes(), n)
	}
}
