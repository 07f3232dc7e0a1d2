package activity

import (
	"strings"
	"time"
)

// ObjectTypeArr is the object type stamped on collection mutation events.
const ObjectTypeArr = "arr"

// MutationEventInput describes the fields of a collection mutation event.
type MutationEventInput struct {
	Actor      Actor
	ObjectID   string
	Channel    string
	Length     int
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildMutationEvent constructs an activity event for an in-place change to
// a collection. Length is the element count after the change.
func BuildMutationEvent(verb string, input MutationEventInput) Event {
	metadata := cloneMap(input.Metadata)
	metadata = ensureMetadata(metadata)
	metadata["length"] = input.Length

	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = ObjectTypeArr
	}

	return Event{
		Verb:       strings.TrimSpace(verb),
		Actor:      input.Actor.trimmed(),
		ObjectType: ObjectTypeArr,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
