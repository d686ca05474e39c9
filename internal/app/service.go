package app

import (
	"fmt"

	"lifecounter/internal/domain"

	"github.com/google/uuid"
)

// Service owns the roster of one table session and applies user intents to
// it. Every operation replaces the stored roster with a new value, so a View
// taken earlier never changes underneath its reader.
//
// A Service is not safe for concurrent use; adapters drive it from a single
// loop (the Nakama match loop or the console reader).
type Service struct {
	id     string
	roster domain.Roster
}

// NewService constructs a Service seated for playerCount players at
// startingLife. A non-positive startingLife uses domain.DefaultStartingLife.
func NewService(playerCount, startingLife int) (*Service, error) {
	roster, err := domain.NewRoster(playerCount, startingLife)
	if err != nil {
		return nil, fmt.Errorf("new table service: %w", err)
	}
	return &Service{id: uuid.NewString(), roster: roster}, nil
}

// NewDefaultService constructs a Service with the default 2-player, 40-life roster.
func NewDefaultService() *Service {
	return &Service{id: uuid.NewString(), roster: domain.DefaultRoster()}
}

// ID returns the table session id.
func (s *Service) ID() string {
	return s.id
}

// Roster returns the current roster value.
func (s *Service) Roster() domain.Roster {
	return s.roster
}

// Snapshot returns the current read model.
func (s *Service) Snapshot() View {
	return BuildView(s.id, s.roster)
}

// SetPlayerCount reseats the table for n players with fresh records.
func (s *Service) SetPlayerCount(n int) ([]Event, error) {
	next, err := s.roster.SetPlayerCount(n)
	if err != nil {
		return nil, err
	}
	s.roster = next
	return []Event{{
		Kind:    EventRosterResized,
		Payload: RosterResizedPayload{PlayerCount: next.PlayerCount()},
	}}, nil
}

// AdjustLife adds delta to one player's life.
func (s *Service) AdjustLife(index, delta int) ([]Event, error) {
	next, err := s.roster.AdjustLife(index, delta)
	if err != nil {
		return nil, err
	}
	s.roster = next
	p, _ := next.Player(index)
	return []Event{{
		Kind:    EventLifeAdjusted,
		Payload: LifeAdjustedPayload{Index: index, Delta: delta, Life: p.Life},
	}}, nil
}

// AdjustPoison adds delta to one player's poison counter.
func (s *Service) AdjustPoison(index, delta int) ([]Event, error) {
	next, err := s.roster.AdjustPoison(index, delta)
	if err != nil {
		return nil, err
	}
	s.roster = next
	p, _ := next.Player(index)
	return []Event{{
		Kind:    EventPoisonAdjusted,
		Payload: PoisonAdjustedPayload{Index: index, Delta: delta, Poison: p.Poison},
	}}, nil
}

// SetPlayerName stores a display name for one player.
func (s *Service) SetPlayerName(index int, name string) ([]Event, error) {
	next, err := s.roster.SetPlayerName(index, name)
	if err != nil {
		return nil, err
	}
	s.roster = next
	return []Event{{
		Kind:    EventPlayerRenamed,
		Payload: PlayerRenamedPayload{Index: index, Name: name},
	}}, nil
}

// ApplySettings applies user-entered starting-life text. Invalid text is
// replaced by the default starting life; this never fails.
func (s *Service) ApplySettings(input string) []Event {
	_, ok := domain.ParseStartingLife(input)
	s.roster = s.roster.ApplySettings(input)
	return []Event{{
		Kind: EventSettingsApplied,
		Payload: SettingsAppliedPayload{
			Input:        input,
			StartingLife: s.roster.StartingLife(),
			UsedFallback: !ok,
		},
	}}
}

// ResetCounters restores every player to the starting life with no poison.
func (s *Service) ResetCounters() []Event {
	s.roster = s.roster.ResetCounters()
	return []Event{{
		Kind:    EventCountersReset,
		Payload: CountersResetPayload{StartingLife: s.roster.StartingLife()},
	}}
}
