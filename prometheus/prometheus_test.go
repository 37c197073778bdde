package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func metricValue(t *testing.T, name string) *dto.Metric {
	t.Helper()
	families, err := Gatherer().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			require.Len(t, family.GetMetric(), 1)
			return family.GetMetric()[0]
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestGaugesAndCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	InitWithRegistry(reg, reg)

	RegisterGauges(prometheus.GaugeOpts{Name: "test_gauge", Help: "test"})
	// registering twice is a no-op
	RegisterGauges(prometheus.GaugeOpts{Name: "test_gauge", Help: "test"})
	RegisterCounters(prometheus.CounterOpts{Name: "test_counter", Help: "test"})

	GaugeInc("test_gauge")
	GaugeInc("test_gauge")
	require.InDelta(t, 2, metricValue(t, "test_gauge").GetGauge().GetValue(), 0)
	GaugeSet("test_gauge", 42)
	require.InDelta(t, 42, metricValue(t, "test_gauge").GetGauge().GetValue(), 0)

	CounterInc("test_counter")
	require.InDelta(t, 1, metricValue(t, "test_counter").GetCounter().GetValue(), 0)

	// unknown metrics are ignored
	GaugeInc("unknown")
	CounterInc("unknown")
}
