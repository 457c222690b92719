package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/menuloop/internal/runtime"
	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	dispatched []string
	rejected   []error
	entered    []int
	left       int
	confirms   []bool
}

func (r *recorder) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoopEnter: func(_ context.Context, e *domain.LoopEvent) { r.entered = append(r.entered, e.Depth) },
		OnLoopLeave: func(context.Context, *domain.LoopEvent) { r.left++ },
		OnDispatch:  func(_ context.Context, e *domain.DispatchEvent) { r.dispatched = append(r.dispatched, e.Option) },
		OnReject:    func(_ context.Context, e *domain.RejectEvent) { r.rejected = append(r.rejected, e.Reason) },
		OnConfirm:   func(_ context.Context, e *domain.ConfirmEvent) { r.confirms = append(r.confirms, e.Confirmed) },
	}
}

func addOption() domain.Option {
	return domain.NewOption("Add", domain.Returns("added"), domain.Strings("add", "a"))
}

func sumOption() domain.Option {
	sum := domain.Func(func(_ context.Context, args []domain.Value) (any, error) {
		var total int64
		for _, a := range args[1:] {
			n, _ := a.AsInt()
			total += n
		}
		return total, nil
	})
	return domain.NewOption("Sum", sum, domain.Strings("sum").OrKind(domain.KindInt))
}

// runLoop drives a loop with scripted input and returns its result,
// error, output and recorded events.
func runLoop(t *testing.T, input string, options []domain.Option, opts ...Option) (any, error, string, *recorder) {
	t.Helper()
	out := &bytes.Buffer{}
	rec := &recorder{}
	opts = append([]Option{
		WithIOHandler(NewTextHandler(strings.NewReader(input), out)),
		WithHooks(rec.hooks()),
	}, opts...)
	res, err := New(options, opts...).Run(context.Background())
	return res, err, out.String(), rec
}

func TestLoop_DispatchThenBreak(t *testing.T) {
	res, err, out, rec := runLoop(t, "add\nq\n", []domain.Option{addOption()})

	require.NoError(t, err)
	assert.Equal(t, "added", res)
	assert.Equal(t, []string{"Add"}, rec.dispatched)
	assert.Contains(t, out, "[add a]: Add")
	assert.Contains(t, out, "q: Quit Default Loop")
}

func TestLoop_AliasAndCaseInsensitiveBreak(t *testing.T) {
	res, err, _, _ := runLoop(t, "a\nQ\n", []domain.Option{addOption()})

	require.NoError(t, err)
	assert.Equal(t, "added", res)
}

func TestLoop_RequireReturn(t *testing.T) {
	res, err, out, rec := runLoop(t, "q\nadd\nq\n", []domain.Option{addOption()})

	require.NoError(t, err)
	assert.Equal(t, "added", res)
	assert.Contains(t, out, "Selection required")
	require.Len(t, rec.rejected, 1)
	assert.ErrorIs(t, rec.rejected[0], domain.ErrSelectionRequired)
}

func TestLoop_RequireReturnNeverBreaksWithoutResult(t *testing.T) {
	_, err, out, rec := runLoop(t, "q\nq\n", []domain.Option{addOption()})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, strings.Count(out, "Selection required"))
	assert.Empty(t, rec.dispatched)
}

func TestLoop_Default(t *testing.T) {
	t.Run("substituted without a result", func(t *testing.T) {
		res, err, _, _ := runLoop(t, "q\n", []domain.Option{addOption()},
			WithRequireReturn(false), WithDefault(42))
		require.NoError(t, err)
		assert.Equal(t, 42, res)
	})

	t.Run("nil when disabled", func(t *testing.T) {
		res, err, _, _ := runLoop(t, "q\n", []domain.Option{addOption()}, WithRequireReturn(false))
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("ignored when a result exists", func(t *testing.T) {
		res, err, _, _ := runLoop(t, "add\nq\n", []domain.Option{addOption()}, WithDefault(42))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
	})
}

func TestLoop_NilResultClearsLast(t *testing.T) {
	options := []domain.Option{
		addOption(),
		domain.NewOption("Clear", domain.Returns(nil), domain.Exact(domain.Str("clear"))),
	}
	res, err, _, rec := runLoop(t, "add\nclear\nq\n", options,
		WithRequireReturn(false), WithDefault("fallback"))

	require.NoError(t, err)
	assert.Equal(t, "fallback", res)
	assert.Equal(t, []string{"Add", "Clear"}, rec.dispatched)
}

func TestLoop_EmptyLine(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		res, err, out, rec := runLoop(t, "\n   \nadd\nq\n", []domain.Option{addOption()})
		require.NoError(t, err)
		assert.Equal(t, "added", res)
		assert.Equal(t, 2, strings.Count(out, "Input required"))
		assert.Equal(t, []string{"Add"}, rec.dispatched)
	})

	t.Run("breaks when allowed", func(t *testing.T) {
		res, err, _, _ := runLoop(t, "add\n\n", []domain.Option{addOption()}, WithAllowNothing(true))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
	})

	t.Run("still needs a result when allowed", func(t *testing.T) {
		res, err, out, _ := runLoop(t, "\nadd\n\n", []domain.Option{addOption()}, WithAllowNothing(true))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
		assert.Contains(t, out, "Selection required")
	})
}

func TestLoop_UnknownToken(t *testing.T) {
	res, err, out, rec := runLoop(t, "xyz\nq\n", []domain.Option{addOption()}, WithRequireReturn(false))

	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Contains(t, out, "'xyz' not in environment")
	assert.Empty(t, rec.dispatched)
	require.Len(t, rec.rejected, 1)
	assert.ErrorIs(t, rec.rejected[0], domain.ErrTokenRejected)
}

func TestLoop_ArgumentsMustBeMembers(t *testing.T) {
	res, err, out, rec := runLoop(t, "sum 1 x\nsum 1 2\nq\n", []domain.Option{sumOption()})

	require.NoError(t, err)
	assert.Equal(t, int64(3), res)
	assert.Contains(t, out, "'x' not in environment")
	assert.Equal(t, []string{"Sum"}, rec.dispatched)
}

func TestLoop_Suggestions(t *testing.T) {
	_, _, out, _ := runLoop(t, "ad\n", []domain.Option{addOption()})
	assert.Contains(t, out, "'ad' not in environment (did you mean: add?)")

	_, _, out, _ = runLoop(t, "ad\n", []domain.Option{addOption()}, WithSuggestions(false))
	assert.NotContains(t, out, "did you mean")
}

func TestLoop_WithoutBreakIsOneShot(t *testing.T) {
	res, err, out, _ := runLoop(t, "add\nadd\n", []domain.Option{addOption()}, WithoutBreak())

	require.NoError(t, err)
	assert.Equal(t, "added", res)
	assert.NotContains(t, out, "Quit")
}

func TestLoop_CustomBreak(t *testing.T) {
	res, err, out, _ := runLoop(t, "add\nexit\n", []domain.Option{addOption()},
		WithName("Top Loop"), WithBreak("exit"), WithBreakText("Leave"))

	require.NoError(t, err)
	assert.Equal(t, "added", res)
	assert.Contains(t, out, "exit: Leave Top Loop")
}

func TestLoop_HandlerError(t *testing.T) {
	boom := errors.New("boom")
	options := []domain.Option{
		domain.NewOption("Fail", domain.Thunk(func(context.Context) (any, error) { return nil, boom }), domain.Exact(domain.Str("fail"))),
	}
	_, err, _, rec := runLoop(t, "fail\nq\n", options)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	var hErr *runtime.HandlerError
	require.ErrorAs(t, err, &hErr)
	assert.Equal(t, "Fail", hErr.Option)
	assert.Equal(t, []string{"Fail"}, rec.dispatched)
	assert.Equal(t, 1, rec.left)
}

func TestLoop_EndOfInput(t *testing.T) {
	_, err, _, rec := runLoop(t, "add\n", []domain.Option{addOption()})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []int{0}, rec.entered)
	assert.Equal(t, 1, rec.left)
}

func TestLoop_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewTextHandler(strings.NewReader("add\nq\n"), io.Discard)
	_, err := New([]domain.Option{addOption()}, WithIOHandler(h)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoop_Confirm(t *testing.T) {
	t.Run("declined then accepted", func(t *testing.T) {
		res, err, out, rec := runLoop(t, "add\nq\nn\nq\ny\n", []domain.Option{addOption()}, WithConfirm(true))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
		assert.Equal(t, 2, strings.Count(out, "Is 'added' ok?\n"))
		assert.Equal(t, []bool{false, true}, rec.confirms)
	})

	t.Run("empty line accepts", func(t *testing.T) {
		res, err, _, _ := runLoop(t, "add\nq\n\n", []domain.Option{addOption()}, WithConfirm(true))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
	})

	t.Run("answer is case-insensitive", func(t *testing.T) {
		res, err, _, _ := runLoop(t, "add\nq\nY\n", []domain.Option{addOption()}, WithConfirm(true))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
	})

	t.Run("other answers re-prompt", func(t *testing.T) {
		res, err, out, _ := runLoop(t, "add\nq\nmaybe\ny\n", []domain.Option{addOption()}, WithConfirm(true))
		require.NoError(t, err)
		assert.Equal(t, "added", res)
		assert.Contains(t, out, "'maybe' not in environment")
		assert.NotContains(t, out, "did you mean")
	})
}

func TestLoop_Help(t *testing.T) {
	l := New([]domain.Option{addOption(), sumOption()}, WithName("Top Loop"), WithInstructions("Pick one:"))
	assert.Equal(t, "Pick one:\n[add a]: Add\n[sum <int>]: Sum\nq: Quit Top Loop", l.Help())
	assert.Equal(t, "Top Loop", l.Name())

	l = New([]domain.Option{addOption()}, WithoutBreak())
	assert.Equal(t, "\n[add a]: Add", l.Help())
}
