package session

import "github.com/tailored-agentic-units/coagent/observability"

const (
	EventStart    observability.EventType = "session.start"
	EventStop     observability.EventType = "session.stop"
	EventStopMiss observability.EventType = "session.stop.miss"
)
