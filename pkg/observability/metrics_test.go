package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/runner"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options() []domain.Option {
	return []domain.Option{
		domain.NewOption("Add", domain.Returns("added"), domain.Strings("add", "a")),
	}
}

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics()
	_, err := runner.New(options(),
		runner.WithName("Top"),
		runner.WithIOHandler(runner.NewTextHandler(strings.NewReader("\nxyz\nadd\nq\n"), &bytes.Buffer{})),
		runner.WithHooks(m.Hooks()),
	).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessions.WithLabelValues("Top")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("Top", "Add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("Top", "input_required")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("Top", "token_rejected")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_Confirm(t *testing.T) {
	m := NewMetrics()
	_, err := runner.New(options(),
		runner.WithName("Top"),
		runner.WithConfirm(true),
		runner.WithIOHandler(runner.NewTextHandler(strings.NewReader("add\nq\nn\nq\ny\n"), &bytes.Buffer{})),
		runner.WithHooks(m.Hooks()),
	).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirms.WithLabelValues("Top", "no")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirms.WithLabelValues("Top", "yes")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessions.WithLabelValues(runner.ConfirmName)))
}

func TestMetrics_ConfirmLabelsStayBounded(t *testing.T) {
	echo := domain.NewOption("Echo",
		domain.Func(func(_ context.Context, args []domain.Value) (any, error) {
			return args[len(args)-1].String(), nil
		}),
		domain.Strings("echo").OrKind(domain.KindString),
	)
	input := "echo a1\nq\nn\necho b2\nq\nn\necho c3\nq\ny\n"

	m := NewMetrics()
	res, err := runner.New([]domain.Option{echo},
		runner.WithName("Top"),
		runner.WithConfirm(true),
		runner.WithIOHandler(runner.NewTextHandler(strings.NewReader(input), &bytes.Buffer{})),
		runner.WithHooks(m.Hooks()),
	).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c3", res)

	assert.Equal(t, 2, testutil.CollectAndCount(m.sessions))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions.WithLabelValues(runner.ConfirmName)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.dispatches))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.sessions.WithLabelValues("Top").Inc()

	path := filepath.Join(t.TempDir(), "menuloop.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `menuloop_sessions_total{loop="Top"} 1`)
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "selection_required", RejectReason(domain.ErrSelectionRequired))
	assert.Equal(t, "key_not_found", RejectReason(domain.ErrKeyNotFound))
	assert.Equal(t, "other", RejectReason(errors.New("x")))
}

func TestLogHooks(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	_, err := runner.New(options(),
		runner.WithIOHandler(runner.NewTextHandler(strings.NewReader("a\nq\n"), &bytes.Buffer{})),
		runner.WithHooks(LogHooks(logger)),
	).Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=loop_enter")
	assert.Contains(t, out, "msg=dispatch")
	assert.Contains(t, out, "option=Add")
	assert.Contains(t, out, "msg=loop_leave")
}
