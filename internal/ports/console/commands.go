package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op is a console command verb.
type Op string

const (
	OpPlayers  Op = "players"
	OpLife     Op = "life"
	OpPoison   Op = "poison"
	OpName     Op = "name"
	OpSettings Op = "settings"
	OpFormat   Op = "format"
	OpReset    Op = "reset"
	OpShow     Op = "show"
	OpLayout   Op = "layout"
	OpHelp     Op = "help"
	OpQuit     Op = "quit"
)

var aliases = map[string]Op{
	"count": OpPlayers,
	"exit":  OpQuit,
	"?":     OpHelp,
}

var ErrUsage = errors.New("usage")

// Command is one parsed console line. Seat is 1-based as typed.
type Command struct {
	Op    Op
	Seat  int
	Delta int
	Count int
	Text  string
}

// Usage lists the accepted commands.
const Usage = `commands:
  players N            reseat the table for N players (2-4)
  life SEAT DELTA      add DELTA to a player's life
  poison SEAT DELTA    add DELTA to a player's poison counter
  name SEAT [TEXT]     set a player's name, empty restores the default
  settings [TEXT]      apply a starting life, invalid text uses 40
  format ID            apply a starting life preset
  reset                reset life and poison for every player
  show                 print the table
  layout [N]           print the seating layout
  help                 print this text
  quit                 leave`

// Parse reads one console line. Blank lines parse to a zero Command with an
// empty Op.
func Parse(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	verb, rest := nextField(line)
	if verb == "" {
		return Command{}, nil
	}

	op := Op(strings.ToLower(verb))
	if alias, ok := aliases[string(op)]; ok {
		op = alias
	}

	switch op {
	case OpPlayers:
		n, err := intArg(op, "N", rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: op, Count: n}, nil

	case OpLife, OpPoison:
		seatText, deltaText := nextField(rest)
		seat, err := intArg(op, "SEAT", seatText)
		if err != nil {
			return Command{}, err
		}
		delta, err := intArg(op, "DELTA", deltaText)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: op, Seat: seat, Delta: delta}, nil

	case OpName:
		seatText, name := nextField(rest)
		seat, err := intArg(op, "SEAT", seatText)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: op, Seat: seat, Text: name}, nil

	case OpSettings:
		return Command{Op: op, Text: rest}, nil

	case OpFormat:
		id, _ := nextField(rest)
		if id == "" {
			return Command{}, fmt.Errorf("%w: %s ID", ErrUsage, op)
		}
		return Command{Op: op, Text: id}, nil

	case OpLayout:
		if strings.TrimSpace(rest) == "" {
			return Command{Op: op}, nil
		}
		n, err := intArg(op, "N", rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: op, Count: n}, nil

	case OpReset, OpShow, OpHelp, OpQuit:
		return Command{Op: op}, nil
	}

	return Command{}, fmt.Errorf("%w: unknown command %q", ErrUsage, verb)
}

func intArg(op Op, name, text string) (int, error) {
	field, extra := nextField(text)
	if field == "" {
		return 0, fmt.Errorf("%w: %s needs %s", ErrUsage, op, name)
	}
	if extra != "" {
		return 0, fmt.Errorf("%w: %s takes a single %s", ErrUsage, op, name)
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s must be an integer, got %q", ErrUsage, op, name, field)
	}
	return n, nil
}

// nextField splits off the first whitespace-separated field. rest keeps its
// trailing text verbatim.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i+1:], " \t")
}
