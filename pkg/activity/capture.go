package activity

import (
	"context"
	"sync"
)

// CaptureHook keeps every event it receives. Tests use it to assert on
// emitted mutations; Err is returned from each Notify when set.
type CaptureHook struct {
	Events []Event
	Err    error
	mu     sync.Mutex
}

func (h *CaptureHook) Notify(_ context.Context, event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Events = append(h.Events, NormalizeEvent(event))
	return h.Err
}

// Verbs lists the verbs of the captured events in arrival order.
func (h *CaptureHook) Verbs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	verbs := make([]string, len(h.Events))
	for i, event := range h.Events {
		verbs[i] = event.Verb
	}
	return verbs
}
