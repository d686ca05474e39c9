package app

// EventKind identifies emitted table events for adapter dispatch.
type EventKind string

const (
	EventRosterResized   EventKind = "roster_resized"
	EventLifeAdjusted    EventKind = "life_adjusted"
	EventPoisonAdjusted  EventKind = "poison_adjusted"
	EventPlayerRenamed   EventKind = "player_renamed"
	EventSettingsApplied EventKind = "settings_applied"
	EventCountersReset   EventKind = "counters_reset"
)

// Event is a table event produced by a Service operation.
type Event struct {
	Kind    EventKind
	Payload any
}

type RosterResizedPayload struct {
	PlayerCount int
}

type LifeAdjustedPayload struct {
	Index int
	Delta int
	Life  int
}

type PoisonAdjustedPayload struct {
	Index  int
	Delta  int
	Poison int
}

type PlayerRenamedPayload struct {
	Index int
	Name  string
}

type SettingsAppliedPayload struct {
	Input        string
	StartingLife int
	// UsedFallback is set when Input could not be parsed and the default
	// starting life was applied instead.
	UsedFallback bool
}

type CountersResetPayload struct {
	StartingLife int
}
