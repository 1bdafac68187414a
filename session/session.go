// Package session tracks which single coagent is the active agent session in
// a host context.
package session

// Descriptor names the agent that owns the current session. ID is assigned
// when the session starts; ownership checks use AgentName only.
type Descriptor struct {
	AgentName string `json:"agentName"`
	ID        string `json:"id,omitempty"`
}

// Slot holds at most one Descriptor. A nil Descriptor means no session.
// Implementations must be safe for concurrent use.
type Slot interface {
	// Session returns the current descriptor, or nil.
	Session() *Descriptor
	// SetSession replaces the current descriptor. nil clears it.
	SetSession(d *Descriptor)
}
