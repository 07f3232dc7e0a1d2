package usersink

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/goliatone/go-arr/pkg/activity"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// Hook forwards collection mutation events to a go-users ActivitySink.
type Hook struct {
	Sink usertypes.ActivitySink
	// Channel is used when the event carries none.
	Channel string
}

// Notify maps the event into an ActivityRecord and forwards it to the sink.
// Events without a verb or object are dropped.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil {
		return nil
	}

	normalized := activity.NormalizeEvent(event)
	if !normalized.Routable() {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	channel := normalized.Channel
	if channel == "" {
		channel = strings.TrimSpace(h.Channel)
	}

	record := usertypes.ActivityRecord{
		ActorID:    parseUUID(normalized.Actor.ActorID),
		UserID:     parseUUID(normalized.Actor.UserID),
		TenantID:   parseUUID(normalized.Actor.TenantID),
		Verb:       normalized.Verb,
		ObjectType: normalized.ObjectType,
		ObjectID:   normalized.ObjectID,
		Channel:    channel,
		Data:       cloneMap(normalized.Metadata),
		OccurredAt: normalized.OccurredAt,
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now()
	}

	return h.Sink.Log(ctx, record)
}

func parseUUID(input string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(input))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
