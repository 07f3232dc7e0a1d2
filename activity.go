package arr

import (
	"context"

	"github.com/goliatone/go-arr/pkg/activity"
	"github.com/google/uuid"
)

const (
	verbConcatenated = "arr.concatenated"
	verbPushed       = "arr.pushed"
	verbUnshifted    = "arr.unshifted"
	verbSpliced      = "arr.spliced"
)

// ID returns the identifier stamped on activity events for this collection,
// assigning one on first use.
func (a *Arr[T]) ID() string {
	if a == nil {
		return ""
	}
	if a.id == "" {
		a.id = uuid.NewString()
	}
	return a.id
}

// ActivityHooks returns a copy of the configured hooks.
func (a *Arr[T]) ActivityHooks() activity.Hooks {
	if a == nil {
		return nil
	}
	return a.cfg.hooks.Compact()
}

func (a *Arr[T]) emit(verb string, metadata map[string]any) {
	if len(a.cfg.hooks) == 0 {
		return
	}
	emitter := activity.NewEmitter(a.cfg.hooks, activity.Config{
		Enabled: true,
		Channel: a.cfg.channel,
		Actor:   a.cfg.actor,
	})
	event := activity.BuildMutationEvent(verb, activity.MutationEventInput{
		ObjectID: a.ID(),
		Length:   len(a.items),
		Metadata: metadata,
	})
	if err := emitter.Emit(context.Background(), event); err != nil && a.cfg.onHookError != nil {
		a.cfg.onHookError(err)
	}
}
