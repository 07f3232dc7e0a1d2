package activity

import (
	"context"
	"errors"
	"maps"
	"strings"
	"time"
)

// Actor identifies who performed a mutation. Any field may be empty.
type Actor struct {
	ActorID  string
	UserID   string
	TenantID string
}

// IsZero reports whether no identity field is set.
func (a Actor) IsZero() bool {
	return a.ActorID == "" && a.UserID == "" && a.TenantID == ""
}

func (a Actor) trimmed() Actor {
	return Actor{
		ActorID:  strings.TrimSpace(a.ActorID),
		UserID:   strings.TrimSpace(a.UserID),
		TenantID: strings.TrimSpace(a.TenantID),
	}
}

// Event is a single collection mutation as seen by hooks.
type Event struct {
	Verb       string
	Actor      Actor
	ObjectType string
	ObjectID   string
	Channel    string
	Metadata   map[string]any
	OccurredAt time.Time
}

// Routable reports whether the event carries the fields every hook keys on.
func (e Event) Routable() bool {
	return e.Verb != "" && e.ObjectType != "" && e.ObjectID != ""
}

// ActivityHook receives normalized mutation events.
type ActivityHook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc adapts a plain function to ActivityHook.
type HookFunc func(ctx context.Context, event Event) error

func (fn HookFunc) Notify(ctx context.Context, event Event) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// Hooks fans an event out to every member.
type Hooks []ActivityHook

// Compact returns the non-nil hooks, or nil when there are none.
func (h Hooks) Compact() Hooks {
	var out Hooks
	for _, hook := range h {
		if hook != nil {
			out = append(out, hook)
		}
	}
	return out
}

// Notify normalizes event and delivers it to each hook in order. Events that
// are not routable are dropped silently. Hook failures do not stop delivery;
// they are joined into the returned error.
func (h Hooks) Notify(ctx context.Context, event Event) error {
	if len(h) == 0 {
		return nil
	}
	event = NormalizeEvent(event)
	if !event.Routable() {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	for _, hook := range h.Compact() {
		errs = append(errs, hook.Notify(ctx, event))
	}
	return errors.Join(errs...)
}

// NormalizeEvent trims identifiers, gives the event its own metadata map and
// stamps OccurredAt when missing.
func NormalizeEvent(event Event) Event {
	event.Verb = strings.TrimSpace(event.Verb)
	event.Actor = event.Actor.trimmed()
	event.ObjectType = strings.TrimSpace(event.ObjectType)
	event.ObjectID = strings.TrimSpace(event.ObjectID)
	event.Channel = strings.TrimSpace(event.Channel)
	event.Metadata = cloneMap(event.Metadata)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	return event
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
