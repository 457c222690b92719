package domain

import "context"

// HandlerFunc receives every token of the line that selected it,
// the command identifier included.
type HandlerFunc func(ctx context.Context, args []Value) (any, error)

// ThunkFunc is a handler that takes no arguments.
type ThunkFunc func(ctx context.Context) (any, error)

// Handler is the callable bound to an Option. A nil result means the
// handler produced no value.
type Handler struct {
	fn        HandlerFunc
	thunk     ThunkFunc
	takesArgs bool
}

// Func builds a handler that accepts the token list.
func Func(fn HandlerFunc) Handler {
	return Handler{fn: fn, takesArgs: true}
}

// Thunk builds a zero-argument handler.
func Thunk(fn ThunkFunc) Handler {
	return Handler{thunk: fn}
}

// Returns builds a zero-argument handler that yields a constant.
func Returns(v any) Handler {
	return Thunk(func(context.Context) (any, error) { return v, nil })
}

// AcceptsArgs reports whether the handler was declared with an argument list.
func (h Handler) AcceptsArgs() bool { return h.takesArgs }

// IsZero reports whether no function is bound.
func (h Handler) IsZero() bool { return h.fn == nil && h.thunk == nil }

// Invoke calls the handler, passing args only when it accepts them.
func (h Handler) Invoke(ctx context.Context, args []Value) (any, error) {
	switch {
	case h.takesArgs && h.fn != nil:
		return h.fn(ctx, args)
	case h.thunk != nil:
		return h.thunk(ctx)
	}
	return nil, nil
}
