package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveBinding("hello", false, 10*time.Millisecond)
	m.ObserveBinding("hello", true, time.Millisecond)
	m.ObserveBinding("hello", true, time.Millisecond)
	m.ObserveScript("factorial", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BindingRequests.WithLabelValues("hello", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BindingRequests.WithLabelValues("hello", OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScriptRuns.WithLabelValues("factorial", OutcomeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BindingDuration))
}
