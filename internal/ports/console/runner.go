package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"lifecounter/internal/app"
	"lifecounter/internal/ports"

	"github.com/sirupsen/logrus"
)

// FormatLookup resolves a format preset id to a starting life. found is
// false when the id is unknown and life is a fallback.
type FormatLookup func(formatID string) (life int, found bool)

// Runner reads console commands and applies them to one table.
type Runner struct {
	svc     *app.Service
	view    ports.ViewPort
	out     io.Writer
	log     logrus.FieldLogger
	formats FormatLookup
}

// NewRunner wires a runner. out receives help and layout text; rendered
// views and errors go to view. formats may be nil, in which case only the
// default starting life is available as a preset.
func NewRunner(svc *app.Service, view ports.ViewPort, out io.Writer, log logrus.FieldLogger, formats FormatLookup) *Runner {
	if formats == nil {
		formats = func(string) (int, bool) { return 0, false }
	}
	return &Runner{
		svc:     svc,
		view:    view,
		out:     out,
		log:     log.WithField("table_id", svc.ID()),
		formats: formats,
	}
}

// Run prints the initial view and processes lines from in until EOF, a quit
// command, or ctx is done.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	if err := r.view.PublishView(ctx, r.svc.Snapshot()); err != nil {
		return fmt.Errorf("publish initial view: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := Parse(scanner.Text())
		if err != nil {
			r.log.WithError(err).Warn("Rejected console command")
			if perr := r.view.PublishError(ctx, 400, err.Error()); perr != nil {
				return perr
			}
			continue
		}
		if cmd.Op == OpQuit {
			return nil
		}
		if err := r.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Handle applies one parsed command. Rejected intents are reported through
// the view port; only output failures are returned.
func (r *Runner) Handle(ctx context.Context, cmd Command) error {
	var (
		events []app.Event
		err    error
	)

	switch cmd.Op {
	case "":
		return nil
	case OpHelp:
		_, err := fmt.Fprintln(r.out, Usage)
		return err
	case OpLayout:
		count := cmd.Count
		if count == 0 {
			count = r.svc.Roster().PlayerCount()
		}
		return WriteLayout(r.out, count)
	case OpShow:
		return r.view.PublishView(ctx, r.svc.Snapshot())
	case OpPlayers:
		events, err = r.svc.SetPlayerCount(cmd.Count)
	case OpLife:
		events, err = r.svc.AdjustLife(cmd.Seat-1, cmd.Delta)
	case OpPoison:
		events, err = r.svc.AdjustPoison(cmd.Seat-1, cmd.Delta)
	case OpName:
		events, err = r.svc.SetPlayerName(cmd.Seat-1, cmd.Text)
	case OpSettings:
		events = r.svc.ApplySettings(cmd.Text)
	case OpFormat:
		life, found := r.formats(cmd.Text)
		if !found {
			r.log.WithField("format", cmd.Text).Warn("Unknown format, applying fallback starting life")
		}
		var input string
		if life > 0 {
			input = strconv.Itoa(life)
		}
		events = r.svc.ApplySettings(input)
	case OpReset:
		events = r.svc.ResetCounters()
	default:
		return r.view.PublishError(ctx, 400, fmt.Sprintf("unsupported command %q", cmd.Op))
	}

	if err != nil {
		r.log.WithError(err).WithField("op", cmd.Op).Warn("Rejected table intent")
		return r.view.PublishError(ctx, 400, err.Error())
	}

	for _, ev := range events {
		r.logEvent(ev)
	}
	return r.view.PublishView(ctx, r.svc.Snapshot())
}

func (r *Runner) logEvent(ev app.Event) {
	entry := r.log.WithField("event", ev.Kind)
	switch p := ev.Payload.(type) {
	case app.LifeAdjustedPayload:
		entry = entry.WithFields(logrus.Fields{"seat": p.Index + 1, "delta": p.Delta, "life": p.Life})
	case app.PoisonAdjustedPayload:
		entry = entry.WithFields(logrus.Fields{"seat": p.Index + 1, "delta": p.Delta, "poison": p.Poison})
	case app.PlayerRenamedPayload:
		entry = entry.WithFields(logrus.Fields{"seat": p.Index + 1, "name": p.Name})
	case app.RosterResizedPayload:
		entry = entry.WithField("player_count", p.PlayerCount)
	case app.SettingsAppliedPayload:
		entry = entry.WithField("starting_life", p.StartingLife)
		if p.UsedFallback {
			entry.WithField("input", p.Input).Info("Starting life input invalid, default applied")
			return
		}
	case app.CountersResetPayload:
		entry = entry.WithField("starting_life", p.StartingLife)
	}
	entry.Debug("Table event")
}
