package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/menuloop/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one Info record per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoopEnter: func(ctx context.Context, e *domain.LoopEvent) {
			logger.InfoContext(ctx, "loop_enter", "loop", e.Loop, "depth", e.Depth)
		},
		OnLoopLeave: func(ctx context.Context, e *domain.LoopEvent) {
			logger.InfoContext(ctx, "loop_leave", "loop", e.Loop, "depth", e.Depth, "result", e.Result, "err", e.Err)
		},
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			logger.InfoContext(ctx, "dispatch",
				"loop", e.Loop,
				"option", e.Option,
				"duration", e.Duration,
				"is_error", e.Err != nil,
			)
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			logger.InfoContext(ctx, "reject", "loop", e.Loop, "input", e.Input, "reason", RejectReason(e.Reason))
		},
		OnConfirm: func(ctx context.Context, e *domain.ConfirmEvent) {
			logger.InfoContext(ctx, "confirm", "loop", e.Loop, "selection", e.Selection, "confirmed", e.Confirmed)
		},
	}
}
