package runner

import (
	"context"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents content to the user: loop instructions or text
	// printed by handlers. Renderers (e.g. markdown) apply here.
	Output(ctx context.Context, content string) error

	// Listing presents the option listing printed before each prompt.
	// It is never passed through a renderer.
	Listing(ctx context.Context, text string) error

	// SystemOutput presents a status message such as "Input required".
	SystemOutput(ctx context.Context, msg string) error

	// Input blocks until the user enters one line.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
