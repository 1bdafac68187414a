package coagent

import "github.com/tailored-agentic-units/coagent/observability"

const (
	EventStateSet   observability.EventType = "coagent.state.set"
	EventEffectSync observability.EventType = "coagent.effect.sync"
	EventEffectSeed observability.EventType = "coagent.effect.seed"
	EventEffectSkip observability.EventType = "coagent.effect.skip"
)
