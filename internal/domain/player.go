package domain

import "fmt"

// PlayerRecord holds the counters and label for one seat.
type PlayerRecord struct {
	Name   string // empty means use the positional default
	Life   int
	Poison int
}

// DisplayName returns the name to render for the record seated at index.
func (p PlayerRecord) DisplayName(index int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Player %d", index+1)
}

func freshRecord(startingLife int) PlayerRecord {
	return PlayerRecord{Life: startingLife}
}
