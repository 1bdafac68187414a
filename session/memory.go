package session

import "sync"

type memorySlot struct {
	current *Descriptor
	mu      sync.RWMutex
}

// NewMemorySlot creates an empty in-memory Slot.
func NewMemorySlot() Slot {
	return &memorySlot{}
}

func (s *memorySlot) Session() *Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	d := *s.current
	return &d
}

func (s *memorySlot) SetSession(d *Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d == nil {
		s.current = nil
		return
	}
	copied := *d
	s.current = &copied
}
