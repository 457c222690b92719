package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/token"
)

// Outcome describes one successful dispatch.
type Outcome struct {
	Option   domain.Option
	Args     []domain.Value
	Result   any
	Duration time.Duration
}

// HandlerError wraps an error returned by an option's handler so callers can
// tell it apart from resolution failures.
type HandlerError struct {
	Option string
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %q failed: %v", e.Option, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }

// Dispatcher tokenizes a line, resolves the command and invokes its handler.
type Dispatcher struct {
	env    *Environment
	parser token.Parser
}

// NewDispatcher creates a dispatcher. A nil parser selects token.Literal.
func NewDispatcher(env *Environment, parser token.Parser) *Dispatcher {
	if parser == nil {
		parser = token.Literal
	}
	return &Dispatcher{env: env, parser: parser}
}

// Environment returns the environment the dispatcher resolves against.
func (d *Dispatcher) Environment() *Environment { return d.env }

// Tokenize parses every word of the line. If any token is not a member of
// the environment the whole line is rejected with ErrTokenRejected.
func (d *Dispatcher) Tokenize(line string) ([]domain.Value, error) {
	words := token.Fields(line)
	tokens := make([]domain.Value, 0, len(words))
	for _, w := range words {
		v := d.parser.Parse(w)
		if !d.env.Contains(v) {
			return nil, &TokenError{Word: w, Value: v}
		}
		tokens = append(tokens, v)
	}
	return tokens, nil
}

// Resolve looks up the command identifier: by value first, then by its
// kind, then by equality with input modifiers applied.
func (d *Dispatcher) Resolve(command domain.Value) (domain.Option, error) {
	opt, err := d.env.Resolve(command)
	if err == nil {
		return opt, nil
	}
	if opt, kindErr := d.env.ResolveKind(command.Kind()); kindErr == nil {
		return opt, nil
	}
	if opt, selErr := d.env.Select(command); selErr == nil {
		return opt, nil
	}
	return domain.Option{}, &CommandError{Command: command, Err: err}
}

// Dispatch runs the full pipeline for one non-empty line.
// Errors are *TokenError, *CommandError or *HandlerError.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (Outcome, error) {
	tokens, err := d.Tokenize(line)
	if err != nil {
		return Outcome{}, err
	}
	if len(tokens) == 0 {
		return Outcome{}, &CommandError{Command: domain.Str(""), Err: fmt.Errorf("%w: empty line", domain.ErrKeyNotFound)}
	}

	opt, err := d.Resolve(tokens[0])
	if err != nil {
		return Outcome{}, err
	}

	start := time.Now()
	result, err := opt.Handler.Invoke(ctx, tokens)
	out := Outcome{Option: opt, Args: tokens, Result: result, Duration: time.Since(start)}
	if err != nil {
		return out, &HandlerError{Option: opt.Name, Err: err}
	}
	return out, nil
}

// TokenError reports a word whose parsed value is not in the environment.
type TokenError struct {
	Word  string
	Value domain.Value
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("'%s' not in environment", e.Value.Quote())
}

func (e *TokenError) Unwrap() error { return domain.ErrTokenRejected }

// CommandError reports a command identifier that resolves to no option.
type CommandError struct {
	Command domain.Value
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s not a recognized command", e.Command.Quote())
}

func (e *CommandError) Unwrap() error { return e.Err }
