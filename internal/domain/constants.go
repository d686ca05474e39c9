package domain

const (
	// DefaultPlayerCount is the number of seats a new table starts with.
	DefaultPlayerCount = 2
	// DefaultStartingLife is the life total players start with, and the
	// fallback used when a starting-life setting cannot be parsed.
	DefaultStartingLife = 40

	// MinPlayerCount and MaxPlayerCount bound the supported seating layouts.
	MinPlayerCount = 2
	MaxPlayerCount = 4
)

// ValidPlayerCount reports whether n has a seating layout.
func ValidPlayerCount(n int) bool {
	return n >= MinPlayerCount && n <= MaxPlayerCount
}
