package runner

import (
	"log/slog"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/token"
)

// Defaults applied by New.
const (
	DefaultName      = "Default Loop"
	DefaultBreak     = "q"
	DefaultBreakText = "Quit"
)

// Option defines a functional option for configuring a Loop.
type Option func(*Loop)

// WithName sets the loop name shown in the break entry.
func WithName(name string) Option {
	return func(l *Loop) {
		l.name = name
	}
}

// WithInstructions sets the text printed at the top of the listing.
func WithInstructions(text string) Option {
	return func(l *Loop) {
		l.instructions = text
	}
}

// WithBreak sets the break trigger. The comparison ignores case.
func WithBreak(trigger string) Option {
	return func(l *Loop) {
		l.breakTrigger = trigger
		l.breaks = true
	}
}

// WithoutBreak removes the break trigger. The loop then ends after the
// first successful dispatch (or on an empty line if AllowNothing is set).
func WithoutBreak() Option {
	return func(l *Loop) {
		l.breakTrigger = ""
		l.breaks = false
	}
}

// WithBreakText sets the label of the break entry.
func WithBreakText(text string) Option {
	return func(l *Loop) {
		l.breakText = text
	}
}

// WithRequireReturn controls whether breaking needs a non-nil last result.
func WithRequireReturn(require bool) Option {
	return func(l *Loop) {
		l.requireReturn = require
	}
}

// WithAllowNothing lets an empty line act as the break signal.
func WithAllowNothing(allow bool) Option {
	return func(l *Loop) {
		l.allowNothing = allow
	}
}

// WithConfirm asks the user to confirm the result before the loop returns.
func WithConfirm(confirm bool) Option {
	return func(l *Loop) {
		l.confirm = confirm
	}
}

// WithDefault sets the value returned when the loop breaks without a result.
func WithDefault(v any) Option {
	return func(l *Loop) {
		l.defaultValue = v
		l.useDefault = true
	}
}

// WithIOHandler configures a custom IOHandler.
func WithIOHandler(handler IOHandler) Option {
	return func(l *Loop) {
		l.handler = handler
	}
}

// WithParser configures how words become values.
func WithParser(p token.Parser) Option {
	return func(l *Loop) {
		l.parser = p
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithHooks registers lifecycle callbacks. Repeated calls are merged.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(l *Loop) {
		l.hooks = domain.MergeHooks(l.hooks, hooks)
	}
}

// WithSuggestions toggles "did you mean" hints for unknown commands.
func WithSuggestions(enabled bool) Option {
	return func(l *Loop) {
		l.suggest = &enabled
	}
}
