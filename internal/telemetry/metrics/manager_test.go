package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersOnGivenRegistry(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterRecordsAdded.Add(3)
	m.CounterBMICalculations.WithLabelValues("Normal").Inc()
	m.GaugeActiveSessions.Set(2)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.CounterRecordsAdded))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterBMICalculations.WithLabelValues("Normal")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.GaugeActiveSessions))

	count, err := testutil.GatherAndCount(reg, "health_test_server_records_added")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewTestManager_Independent(t *testing.T) {
	// separate registries, so creating two managers must not panic on duplicate registration
	m1 := NewTestManager()
	m2 := NewTestManager()
	m1.CounterSessionsStarted.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(m1.CounterSessionsStarted))
	assert.Equal(t, float64(0), testutil.ToFloat64(m2.CounterSessionsStarted))
}

func TestSetupPrometheus(t *testing.T) {
	m, _ := NewTestManagerAndRegistry()
	reg := SetupPrometheus(m.CounterRecordsAdded)
	require.NotNil(t, reg)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
