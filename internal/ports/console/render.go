package console

import (
	"context"
	"fmt"
	"io"

	"lifecounter/internal/app"
	"lifecounter/internal/domain"
	"lifecounter/internal/ports"
)

// TextViewPort renders table views as plain text.
type TextViewPort struct {
	w io.Writer
}

// NewTextViewPort writes rendered views to w.
func NewTextViewPort(w io.Writer) *TextViewPort {
	return &TextViewPort{w: w}
}

// PublishView prints one line per seat in seat order.
func (p *TextViewPort) PublishView(ctx context.Context, view app.View) error {
	if _, err := fmt.Fprintf(p.w, "table %s | %d players | starting life %d\n", view.TableID, view.PlayerCount, view.StartingLife); err != nil {
		return err
	}
	for _, pl := range view.Players {
		_, err := fmt.Fprintf(p.w, "  [%d] %-16s life %5d  poison %3d  %s %d°\n",
			pl.Index+1, pl.DisplayName, pl.Life, pl.Poison, pl.Placement.Region, pl.Placement.RotationDegrees)
		if err != nil {
			return err
		}
	}
	return nil
}

// PublishError prints a rejected intent.
func (p *TextViewPort) PublishError(ctx context.Context, code int, message string) error {
	_, err := fmt.Fprintf(p.w, "error %d: %s\n", code, message)
	return err
}

// WriteLayout prints the seating geometry for playerCount players.
func WriteLayout(w io.Writer, playerCount int) error {
	seats := domain.Layout(playerCount)
	if seats == nil {
		_, err := fmt.Fprintf(w, "no seating layout for %d players\n", playerCount)
		return err
	}
	if _, err := fmt.Fprintf(w, "layout for %d players\n", playerCount); err != nil {
		return err
	}
	for i, s := range seats {
		b := s.Region.Bounds()
		_, err := fmt.Fprintf(w, "  seat %d: %-20s %3d°  x=%.2f y=%.2f w=%.2f h=%.2f\n",
			i+1, s.Region, s.RotationDegrees, b.X, b.Y, b.Width, b.Height)
		if err != nil {
			return err
		}
	}
	return nil
}

var _ ports.ViewPort = (*TextViewPort)(nil)
