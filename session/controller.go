package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/coagent/observability"
)

// Controller starts and stops named agent sessions on a Slot. There is no
// ownership guard on Start: the last caller wins.
type Controller struct {
	slot     Slot
	observer observability.Observer
}

// NewController binds a Controller to slot. A nil observer discards events.
func NewController(slot Slot, observer observability.Observer) *Controller {
	return &Controller{
		slot:     slot,
		observer: observability.OrNoOp(observer),
	}
}

// Start makes name the active agent, overwriting any existing session.
func (c *Controller) Start(name string) Descriptor {
	d := Descriptor{
		AgentName: name,
		ID:        uuid.Must(uuid.NewV7()).String(),
	}
	c.slot.SetSession(&d)

	c.observer.OnEvent(context.Background(), observability.NewEvent(
		EventStart, observability.LevelInfo, "session.Start",
		map[string]any{"agent_name": name, "session_id": d.ID},
	))
	return d
}

// Stop clears the session if name owns it and reports whether it did.
// Stopping a session owned by another agent, or when none is active, leaves
// the slot untouched and emits a warning event.
func (c *Controller) Stop(name string) bool {
	current := c.slot.Session()
	if current == nil || current.AgentName != name {
		data := map[string]any{
			"agent_name": name,
			"message":    fmt.Sprintf("No agent session found for %s", name),
		}
		if current != nil {
			data["owner"] = current.AgentName
		}
		c.observer.OnEvent(context.Background(), observability.NewEvent(
			EventStopMiss, observability.LevelWarning, "session.Stop", data,
		))
		return false
	}

	c.slot.SetSession(nil)
	c.observer.OnEvent(context.Background(), observability.NewEvent(
		EventStop, observability.LevelInfo, "session.Stop",
		map[string]any{"agent_name": name, "session_id": current.ID},
	))
	return true
}
