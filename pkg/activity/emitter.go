package activity

import (
	"context"
	"strings"
)

// Config holds the defaults an Emitter applies to outgoing events.
type Config struct {
	Enabled bool
	// Channel defaults to ObjectTypeArr.
	Channel string
	// Actor fills identity fields the event leaves empty.
	Actor Actor
}

// Emitter delivers events to hooks after applying Config defaults.
type Emitter struct {
	hooks   Hooks
	enabled bool
	channel string
	actor   Actor
}

func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	channel := strings.TrimSpace(cfg.Channel)
	if channel == "" {
		channel = ObjectTypeArr
	}
	hooks = hooks.Compact()
	return &Emitter{
		hooks:   hooks,
		enabled: cfg.Enabled && len(hooks) > 0,
		channel: channel,
		actor:   cfg.Actor.trimmed(),
	}
}

// Enabled reports whether Emit reaches any hook.
func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled
}

// Emit applies the channel and actor defaults and notifies the hooks.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	if strings.TrimSpace(event.Channel) == "" {
		event.Channel = e.channel
	}
	if event.Actor.ActorID == "" {
		event.Actor.ActorID = e.actor.ActorID
	}
	if event.Actor.UserID == "" {
		event.Actor.UserID = e.actor.UserID
	}
	if event.Actor.TenantID == "" {
		event.Actor.TenantID = e.actor.TenantID
	}
	return e.hooks.Notify(ctx, event)
}
