package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/ben-haim/Nxt2Monitor/internal/model"
	"go.uber.org/zap"
)

// ErrCancelled is returned when a wait is abandoned because the session is stopping.
var ErrCancelled = errors.New("event wait cancelled")

// Subscription identifies a server-side event listener.
type Subscription struct {
	Token  string
	Events []string
}

// EventFeed wraps the event registration and long-poll calls of the node API.
type EventFeed struct {
	api    API
	logger *zap.Logger
}

// NewEventFeed creates an EventFeed.
func NewEventFeed(api API, logger *zap.Logger) *EventFeed {
	return &EventFeed{api: api, logger: logger}
}

// Register creates a listener for names.
func (f *EventFeed) Register(ctx context.Context, names []string) (Subscription, error) {
	token, err := f.api.EventRegister(ctx, names, "", false, false)
	if err != nil {
		return Subscription{}, fmt.Errorf("register events: %w", err)
	}
	f.logger.Info("event listener registered", zap.String("token", token), zap.Strings("events", names))
	return Subscription{Token: token, Events: append([]string(nil), names...)}, nil
}

// Wait blocks until events fire or timeoutSeconds elapse. A timeout yields no events.
// Event names are decoded into kinds here; unknown names keep EventUnknown.
func (f *EventFeed) Wait(ctx context.Context, sub Subscription, timeoutSeconds int) ([]model.Event, error) {
	events, err := f.api.EventWait(ctx, sub.Token, timeoutSeconds)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		return nil, fmt.Errorf("wait for events: %w", err)
	}
	for i := range events {
		events[i].Kind = model.ParseEventKind(events[i].Name)
	}
	return events, nil
}

// Deregister removes the listener. Failures are logged and otherwise ignored.
func (f *EventFeed) Deregister(ctx context.Context, sub Subscription) {
	if _, err := f.api.EventRegister(ctx, nil, sub.Token, false, true); err != nil {
		f.logger.Warn("event listener not removed", zap.String("token", sub.Token), zap.Error(err))
		return
	}
	f.logger.Info("event listener removed", zap.String("token", sub.Token))
}
