package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePass(t *testing.T) {
	// Setup ---
	m := NewPrometheus(prometheus.NewRegistry())

	// Exercise ---
	m.ObservePass(time.Second, nil)
	m.ObservePass(time.Second, nil)
	m.ObservePass(time.Second, errors.New("db is down"))

	// Verify ---
	assert.Equal(t, 2.0, testutil.ToFloat64(m.passes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.passes.WithLabelValues("error")))
	assert.Greater(t, testutil.ToFloat64(m.lastSuccessAt), 0.0)
}

func TestAddReminders(t *testing.T) {
	// Setup ---
	m := NewPrometheus(prometheus.NewRegistry())

	// Exercise ---
	m.AddReminders("email_sent", 3)
	m.AddReminders("email_sent", 2)
	m.AddReminders("orphaned", 0)

	// Verify ---
	assert.Equal(t, 5.0, testutil.ToFloat64(m.reminders.WithLabelValues("email_sent")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.reminders))
}
