package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlayerCount = errors.New("player count has no seating layout")
	ErrInvalidPlayerIndex = errors.New("player index out of range")
)

// Roster is the ordered set of player records plus the table's starting life.
//
// A Roster is a value: every operation returns a new Roster and leaves the
// receiver untouched, so a caller holding a previous Roster never observes a
// later change. The zero value is not usable; build one with NewRoster or
// DefaultRoster.
type Roster struct {
	players      []PlayerRecord
	startingLife int
}

// NewRoster returns a roster of playerCount fresh records at startingLife.
// A non-positive startingLife is replaced by DefaultStartingLife.
func NewRoster(playerCount, startingLife int) (Roster, error) {
	if !ValidPlayerCount(playerCount) {
		return Roster{}, fmt.Errorf("new roster with %d players: %w", playerCount, ErrInvalidPlayerCount)
	}
	if startingLife <= 0 {
		startingLife = DefaultStartingLife
	}
	return Roster{
		players:      freshRecords(playerCount, startingLife),
		startingLife: startingLife,
	}, nil
}

// DefaultRoster returns the roster a new session starts with.
func DefaultRoster() Roster {
	return Roster{
		players:      freshRecords(DefaultPlayerCount, DefaultStartingLife),
		startingLife: DefaultStartingLife,
	}
}

// PlayerCount returns the number of seats.
func (r Roster) PlayerCount() int {
	return len(r.players)
}

// StartingLife returns the configured starting life.
func (r Roster) StartingLife() int {
	return r.startingLife
}

// Players returns a copy of the records in seat order.
func (r Roster) Players() []PlayerRecord {
	out := make([]PlayerRecord, len(r.players))
	copy(out, r.players)
	return out
}

// Player returns the record at index.
func (r Roster) Player(index int) (PlayerRecord, error) {
	if err := r.checkIndex(index); err != nil {
		return PlayerRecord{}, err
	}
	return r.players[index], nil
}

// SetPlayerCount resizes the roster to n seats. Every seat is refilled with a
// fresh record; previous names and counters are discarded.
func (r Roster) SetPlayerCount(n int) (Roster, error) {
	if !ValidPlayerCount(n) {
		return r, fmt.Errorf("set player count to %d: %w", n, ErrInvalidPlayerCount)
	}
	return Roster{
		players:      freshRecords(n, r.startingLife),
		startingLife: r.startingLife,
	}, nil
}

// AdjustLife adds delta to the life of the player at index. Life is not
// clamped in either direction.
func (r Roster) AdjustLife(index, delta int) (Roster, error) {
	return r.update(index, func(p *PlayerRecord) { p.Life += delta })
}

// AdjustPoison adds delta to the poison counter of the player at index.
// Negative results are kept.
func (r Roster) AdjustPoison(index, delta int) (Roster, error) {
	return r.update(index, func(p *PlayerRecord) { p.Poison += delta })
}

// SetPlayerName stores name verbatim for the player at index. An empty name
// restores the positional default at render time.
func (r Roster) SetPlayerName(index int, name string) (Roster, error) {
	return r.update(index, func(p *PlayerRecord) { p.Name = name })
}

// ApplySettings parses input as the new starting life, falling back to
// DefaultStartingLife, then resets every player's life to it and poison to 0.
// Names are kept.
func (r Roster) ApplySettings(input string) Roster {
	life, _ := ParseStartingLife(input)
	return r.withStartingLife(life)
}

// ResetCounters sets every player back to the starting life with no poison.
// Names, player count and starting life are kept.
func (r Roster) ResetCounters() Roster {
	return r.withStartingLife(r.startingLife)
}

func (r Roster) withStartingLife(life int) Roster {
	players := r.Players()
	for i := range players {
		players[i].Life = life
		players[i].Poison = 0
	}
	return Roster{players: players, startingLife: life}
}

func (r Roster) update(index int, mutate func(*PlayerRecord)) (Roster, error) {
	if err := r.checkIndex(index); err != nil {
		return r, err
	}
	players := r.Players()
	mutate(&players[index])
	return Roster{players: players, startingLife: r.startingLife}, nil
}

func (r Roster) checkIndex(index int) error {
	if index < 0 || index >= len(r.players) {
		return fmt.Errorf("player %d of %d: %w", index, len(r.players), ErrInvalidPlayerIndex)
	}
	return nil
}

// freshRecords allocates n independent records.
func freshRecords(n, startingLife int) []PlayerRecord {
	players := make([]PlayerRecord, n)
	for i := range players {
		players[i] = freshRecord(startingLife)
	}
	return players
}
