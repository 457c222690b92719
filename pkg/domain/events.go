package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLoopEnter EventType = "loop_enter"
	EventLoopLeave EventType = "loop_leave"
	EventDispatch  EventType = "dispatch"
	EventReject    EventType = "reject"
	EventConfirm   EventType = "confirm"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Loop      string    `json:"loop"`
	Depth     int       `json:"depth"`
}

// LoopEvent represents entry into or exit from a loop session.
type LoopEvent struct {
	EventBase
	Result any   `json:"result,omitempty"`
	Err    error `json:"-"`
}

// DispatchEvent represents one handler invocation.
type DispatchEvent struct {
	EventBase
	Option   string        `json:"option"`
	Args     []Value       `json:"-"`
	Result   any           `json:"result,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// RejectEvent represents an input line that was discarded and re-prompted.
// Reason wraps one of ErrInputRequired, ErrTokenRejected, ErrKeyNotFound
// or ErrSelectionRequired.
type RejectEvent struct {
	EventBase
	Input  string `json:"input"`
	Reason error  `json:"-"`
}

// ConfirmEvent represents the outcome of a confirmation prompt.
type ConfirmEvent struct {
	EventBase
	Selection any  `json:"selection,omitempty"`
	Confirmed bool `json:"confirmed"`
}

// LifecycleHooks defines callbacks for loop observability.
type LifecycleHooks struct {
	OnLoopEnter func(context.Context, *LoopEvent)
	OnLoopLeave func(context.Context, *LoopEvent)
	OnDispatch  func(context.Context, *DispatchEvent)
	OnReject    func(context.Context, *RejectEvent)
	OnConfirm   func(context.Context, *ConfirmEvent)
}

// MergeHooks composes several hook sets; callbacks run in argument order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range hooks {
		merged.OnLoopEnter = chain(merged.OnLoopEnter, h.OnLoopEnter)
		merged.OnLoopLeave = chain(merged.OnLoopLeave, h.OnLoopLeave)
		merged.OnDispatch = chain(merged.OnDispatch, h.OnDispatch)
		merged.OnReject = chain(merged.OnReject, h.OnReject)
		merged.OnConfirm = chain(merged.OnConfirm, h.OnConfirm)
	}
	return merged
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
