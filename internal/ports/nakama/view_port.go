package nakama

import (
	"context"
	"fmt"

	"lifecounter/internal/app"
	"lifecounter/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// DispatcherViewPort implements ports.ViewPort over a match dispatcher.
type DispatcherViewPort struct {
	dispatcher runtime.MatchDispatcher
	recipients []runtime.Presence
}

// newDispatcherViewPort targets host, or every presence when host is nil.
func newDispatcherViewPort(dispatcher runtime.MatchDispatcher, host runtime.Presence) *DispatcherViewPort {
	port := &DispatcherViewPort{dispatcher: dispatcher}
	if host != nil {
		port.recipients = []runtime.Presence{host}
	}
	return port
}

// PublishView sends a roster snapshot.
func (p *DispatcherViewPort) PublishView(ctx context.Context, view app.View) error {
	data, err := marshalView(view)
	if err != nil {
		return err
	}
	if err := p.dispatcher.BroadcastMessage(OpRosterSnapshot, data, p.recipients, nil, true); err != nil {
		return fmt.Errorf("failed to broadcast snapshot: %w", err)
	}
	return nil
}

// PublishError sends a table error event.
func (p *DispatcherViewPort) PublishError(ctx context.Context, code int, message string) error {
	data, err := marshalTableError(code, message)
	if err != nil {
		return fmt.Errorf("failed to marshal table error: %w", err)
	}
	if err := p.dispatcher.BroadcastMessage(OpTableError, data, p.recipients, nil, true); err != nil {
		return fmt.Errorf("failed to broadcast table error: %w", err)
	}
	return nil
}

var _ ports.ViewPort = (*DispatcherViewPort)(nil)
