package observability

import (
	"context"
	"errors"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records loop activity as Prometheus collectors on a private
// registry, so several instances never collide.
type Metrics struct {
	Registry *prometheus.Registry

	sessions   *prometheus.CounterVec
	dispatches *prometheus.CounterVec
	rejections *prometheus.CounterVec
	confirms   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the menuloop collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuloop_sessions_total",
				Help: "Loops entered, by loop name",
			},
			[]string{"loop"},
		),
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuloop_dispatch_total",
				Help: "Handler invocations, by loop, option and outcome",
			},
			[]string{"loop", "option", "outcome"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuloop_rejections_total",
				Help: "Input lines discarded before dispatch, by reason",
			},
			[]string{"loop", "reason"},
		),
		confirms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menuloop_confirmations_total",
				Help: "Confirmation answers",
			},
			[]string{"loop", "confirmed"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "menuloop_handler_duration_seconds",
				Help:    "Duration of handler invocations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"loop", "option"},
		),
	}
	m.Registry.MustRegister(m.sessions, m.dispatches, m.rejections, m.confirms, m.duration)
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoopEnter: func(_ context.Context, e *domain.LoopEvent) {
			m.sessions.WithLabelValues(e.Loop).Inc()
		},
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			}
			m.dispatches.WithLabelValues(e.Loop, e.Option, outcome).Inc()
			m.duration.WithLabelValues(e.Loop, e.Option).Observe(e.Duration.Seconds())
		},
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			m.rejections.WithLabelValues(e.Loop, RejectReason(e.Reason)).Inc()
		},
		OnConfirm: func(_ context.Context, e *domain.ConfirmEvent) {
			confirmed := "no"
			if e.Confirmed {
				confirmed = "yes"
			}
			m.confirms.WithLabelValues(e.Loop, confirmed).Inc()
		},
	}
}

// WriteTextfile writes the current values in the text exposition format,
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// RejectReason maps a rejection error to a low-cardinality label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInputRequired):
		return "input_required"
	case errors.Is(err, domain.ErrSelectionRequired):
		return "selection_required"
	case errors.Is(err, domain.ErrTokenRejected):
		return "token_rejected"
	case errors.Is(err, domain.ErrKeyNotFound):
		return "key_not_found"
	}
	return "other"
}
