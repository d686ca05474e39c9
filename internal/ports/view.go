package ports

import (
	"context"

	"lifecounter/internal/app"
)

// ViewPort delivers table state to a presentation layer.
type ViewPort interface {
	// PublishView renders or transmits the current table view.
	PublishView(ctx context.Context, view app.View) error

	// PublishError reports a rejected intent. code follows HTTP-style
	// classes (400 for bad input); message is safe to show to the user.
	PublishError(ctx context.Context, code int, message string) error
}
