package domain

import (
	"strconv"
	"strings"
)

// ParseStartingLife interprets user-entered starting-life text.
// Anything that is not a positive base-10 integer yields DefaultStartingLife
// and ok=false.
func ParseStartingLife(input string) (life int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return DefaultStartingLife, false
	}
	return n, true
}
