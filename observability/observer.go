// Package observability carries diagnostic events out of the coagent and
// session packages. Level values follow OpenTelemetry SeverityNumbers so
// events can be forwarded to an OTel collector without translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level is event severity on the OTel SeverityNumber scale.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8)
	LevelInfo    Level = 9  // OTel INFO (9-12)
	LevelWarning Level = 13 // OTel WARN (13-16)
)

// SlogLevel maps the level onto slog's four levels.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event. Packages declare their own constants, e.g.
// "coagent.effect.seed" or "session.stop.miss".
type EventType string

// Event is a single diagnostic record. Type becomes the OTel EventName,
// Source the instrumentation scope and Data the attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// NewEvent stamps an event with the current time.
func NewEvent(t EventType, level Level, source string, data map[string]any) Event {
	return Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// Observer receives events for logging, tracing or metrics.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// OrNoOp returns o, or NoOpObserver when o is nil.
func OrNoOp(o Observer) Observer {
	if o == nil {
		return NoOpObserver{}
	}
	return o
}
