package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/menuloop/internal/runtime"
	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/token"
)

// Loop is an interactive command loop: it lists its options, reads a line,
// dispatches it and repeats until the break signal is accepted.
type Loop struct {
	options      []domain.Option
	name         string
	instructions string

	breakTrigger string
	breaks       bool
	breakText    string

	requireReturn bool
	allowNothing  bool
	confirm       bool
	defaultValue  any
	useDefault    bool

	// Left unset, these are inherited from the enclosing loop (see Nested).
	handler IOHandler
	parser  token.Parser
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	suggest *bool
}

// New creates a loop over the given options.
func New(options []domain.Option, opts ...Option) *Loop {
	l := &Loop{
		options:       append([]domain.Option(nil), options...),
		name:          DefaultName,
		breakTrigger:  DefaultBreak,
		breaks:        true,
		breakText:     DefaultBreakText,
		requireReturn: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the loop name.
func (l *Loop) Name() string { return l.name }

// Help returns the listing printed before each prompt.
func (l *Loop) Help() string {
	var brk *runtime.BreakLine
	if l.breaks {
		brk = &runtime.BreakLine{Trigger: l.breakTrigger, Text: l.breakText, LoopName: l.name}
	}
	return runtime.HelpText(l.instructions, l.options, brk)
}

// Run executes the loop until it breaks, the input ends or a handler fails.
// On success it returns the last handler result (or the default).
func (l *Loop) Run(ctx context.Context) (result any, err error) {
	s := l.session(ctx)
	ctx = withFrame(ctx, s.frame)

	s.logger.Debug("loop enter", "loop", l.name, "depth", s.depth)
	if s.hooks.OnLoopEnter != nil {
		s.hooks.OnLoopEnter(ctx, &domain.LoopEvent{EventBase: s.base(domain.EventLoopEnter)})
	}
	defer func() {
		s.logger.Debug("loop leave", "loop", l.name, "depth", s.depth, "result", result, "err", err)
		if s.hooks.OnLoopLeave != nil {
			s.hooks.OnLoopLeave(ctx, &domain.LoopEvent{EventBase: s.base(domain.EventLoopLeave), Result: result, Err: err})
		}
	}()

	var last any
	for {
		selection, err := s.collect(ctx, &last)
		if err != nil {
			return nil, err
		}
		if !l.confirm {
			return selection, nil
		}

		ok, err := Confirm(ctx, selection)
		if err != nil {
			return nil, err
		}
		if s.hooks.OnConfirm != nil {
			s.hooks.OnConfirm(ctx, &domain.ConfirmEvent{EventBase: s.base(domain.EventConfirm), Selection: selection, Confirmed: ok})
		}
		if ok {
			return selection, nil
		}
		s.logger.Debug("selection declined", "loop", l.name, "selection", selection)
	}
}

// session resolves inherited settings against the enclosing frame.
func (l *Loop) session(ctx context.Context) *session {
	parent, hasParent := frameFrom(ctx)

	f := frame{
		handler: l.handler,
		parser:  l.parser,
		logger:  l.logger,
		hooks:   l.hooks,
		suggest: true,
	}
	if hasParent {
		if f.handler == nil {
			f.handler = parent.handler
		}
		if f.parser == nil {
			f.parser = parent.parser
		}
		if f.logger == nil {
			f.logger = parent.logger
		}
		f.hooks = domain.MergeHooks(parent.hooks, l.hooks)
		f.suggest = parent.suggest
		f.depth = parent.depth + 1
	}
	if l.suggest != nil {
		f.suggest = *l.suggest
	}
	if f.handler == nil {
		f.handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if f.parser == nil {
		f.parser = token.Literal
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	env := runtime.NewEnvironment(l.options)
	return &session{
		frame:      f,
		loop:       l,
		help:       l.Help(),
		env:        env,
		dispatcher: runtime.NewDispatcher(env, f.parser),
	}
}

type session struct {
	frame
	loop       *Loop
	help       string
	env        *runtime.Environment
	dispatcher *runtime.Dispatcher
}

func (s *session) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, Loop: s.loop.name, Depth: s.depth}
}

// collect reads lines until a break signal is accepted and returns the
// selection: the last result, or the default when there is none.
func (s *session) collect(ctx context.Context, last *any) (any, error) {
	l := s.loop
	for {
		if err := s.handler.Listing(ctx, s.help); err != nil {
			return nil, err
		}
		line, err := s.handler.Input(ctx)
		if err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(line)
		breaking := false
		switch {
		case trimmed == "":
			if !l.allowNothing {
				if err := s.reject(ctx, line, domain.ErrInputRequired, "Input required"); err != nil {
					return nil, err
				}
				continue
			}
			breaking = true
		case l.breaks && strings.EqualFold(trimmed, l.breakTrigger):
			breaking = true
		default:
			out, err := s.dispatcher.Dispatch(ctx, trimmed)
			if err != nil {
				var hErr *runtime.HandlerError
				if errors.As(err, &hErr) {
					s.dispatched(ctx, out, err)
					return nil, err
				}
				if err := s.rejectDispatch(ctx, trimmed, err); err != nil {
					return nil, err
				}
				continue
			}
			s.dispatched(ctx, out, nil)
			*last = out.Result
			breaking = !l.breaks
		}

		if !breaking {
			continue
		}
		if *last == nil && l.requireReturn {
			if err := s.reject(ctx, line, domain.ErrSelectionRequired, "Selection required"); err != nil {
				return nil, err
			}
			continue
		}
		selection := *last
		if selection == nil && l.useDefault {
			selection = l.defaultValue
		}
		return selection, nil
	}
}

func (s *session) dispatched(ctx context.Context, out runtime.Outcome, err error) {
	s.logger.Debug("dispatch",
		"loop", s.loop.name,
		"option", out.Option.Name,
		"args", len(out.Args),
		"duration", out.Duration,
		"err", err,
	)
	if s.hooks.OnDispatch != nil {
		s.hooks.OnDispatch(ctx, &domain.DispatchEvent{
			EventBase: s.base(domain.EventDispatch),
			Option:    out.Option.Name,
			Args:      out.Args,
			Result:    out.Result,
			Duration:  out.Duration,
			Err:       err,
		})
	}
}

func (s *session) reject(ctx context.Context, input string, reason error, msg string) error {
	s.logger.Debug("input rejected", "loop", s.loop.name, "input", input, "reason", reason)
	if s.hooks.OnReject != nil {
		s.hooks.OnReject(ctx, &domain.RejectEvent{EventBase: s.base(domain.EventReject), Input: input, Reason: reason})
	}
	return s.handler.SystemOutput(ctx, msg)
}

func (s *session) rejectDispatch(ctx context.Context, input string, err error) error {
	msg := err.Error()
	if s.suggest {
		var hints []string
		var tErr *runtime.TokenError
		var cErr *runtime.CommandError
		switch {
		case errors.As(err, &tErr):
			hints = s.env.Suggest(tErr.Word)
		case errors.As(err, &cErr):
			hints = s.env.SuggestFor(cErr.Command)
		}
		if len(hints) > 0 {
			msg = fmt.Sprintf("%s (did you mean: %s?)", msg, strings.Join(hints, ", "))
		}
	}
	return s.reject(ctx, input, err, msg)
}
