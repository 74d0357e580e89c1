package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus records reminder pass statistics.
type Prometheus struct {
	passes        *prometheus.CounterVec
	passDuration  prometheus.Histogram
	reminders     *prometheus.CounterVec
	lastSuccessAt prometheus.Gauge
}

func NewPrometheus(registerer prometheus.Registerer) *Prometheus {
	factory := promauto.With(registerer)
	return &Prometheus{
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "volunteercal_reminder_passes_total",
			Help: "Total number of reminder scheduling passes.",
		}, []string{"status"}),
		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "volunteercal_reminder_pass_duration_seconds",
			Help:    "Duration of reminder scheduling passes.",
			Buckets: prometheus.DefBuckets,
		}),
		reminders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "volunteercal_reminders_total",
			Help: "Reminders handled by scheduling passes, by outcome.",
		}, []string{"outcome"}),
		lastSuccessAt: factory.NewGauge(prometheus.GaugeOpts{
			Name: "volunteercal_reminder_pass_last_success_timestamp_seconds",
			Help: "Unix time of the last successful reminder pass.",
		}),
	}
}

func (m *Prometheus) ObservePass(duration time.Duration, err error) {
	m.passDuration.Observe(duration.Seconds())
	if err != nil {
		m.passes.WithLabelValues("error").Inc()
		return
	}
	m.passes.WithLabelValues("ok").Inc()
	m.lastSuccessAt.SetToCurrentTime()
}

func (m *Prometheus) AddReminders(outcome string, count int) {
	if count <= 0 {
		return
	}
	m.reminders.WithLabelValues(outcome).Add(float64(count))
}
