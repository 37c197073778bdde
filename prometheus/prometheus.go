package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zkbridge/walletkit/log"
)

const (
	// Endpoint the endpoint for exposing the metrics
	Endpoint = "/metrics"
)

var (
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	gauges     map[string]prometheus.Gauge
	gaugesMu   sync.RWMutex
	counters   map[string]prometheus.Counter
	countersMu sync.RWMutex

	initialized bool
	initOnce    sync.Once
)

// Init initializes the package variables, using the default registry
func Init() {
	initOnce.Do(func() {
		InitWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	})
}

// InitWithRegistry initializes the package variables with a custom registry, used by tests
func InitWithRegistry(reg prometheus.Registerer, gath prometheus.Gatherer) {
	registerer = reg
	gatherer = gath
	gauges = make(map[string]prometheus.Gauge)
	counters = make(map[string]prometheus.Counter)
	initialized = true
}

// Gatherer returns the gatherer the metrics are registered on
func Gatherer() prometheus.Gatherer {
	return gatherer
}

// RegisterGauges registers the provided gauge metrics to the Prometheus registerer
func RegisterGauges(opts ...prometheus.GaugeOpts) {
	if !initialized {
		return
	}
	gaugesMu.Lock()
	defer gaugesMu.Unlock()

	for _, options := range opts {
		if _, ok := gauges[options.Name]; ok {
			continue
		}
		gauge := prometheus.NewGauge(options)
		if err := registerer.Register(gauge); err != nil {
			log.Warnf("failed to register gauge %s: %v", options.Name, err)
			continue
		}
		gauges[options.Name] = gauge
	}
}

// RegisterCounters registers the provided counter metrics to the Prometheus registerer
func RegisterCounters(opts ...prometheus.CounterOpts) {
	if !initialized {
		return
	}
	countersMu.Lock()
	defer countersMu.Unlock()

	for _, options := range opts {
		if _, ok := counters[options.Name]; ok {
			continue
		}
		counter := prometheus.NewCounter(options)
		if err := registerer.Register(counter); err != nil {
			log.Warnf("failed to register counter %s: %v", options.Name, err)
			continue
		}
		counters[options.Name] = counter
	}
}

func gauge(name string) (prometheus.Gauge, bool) {
	if !initialized {
		return nil, false
	}
	gaugesMu.RLock()
	defer gaugesMu.RUnlock()
	g, ok := gauges[name]
	return g, ok
}

// GaugeSet sets the value of the gauge with the given name
func GaugeSet(name string, value float64) {
	if g, ok := gauge(name); ok {
		g.Set(value)
	}
}

// GaugeInc increments the gauge with the given name
func GaugeInc(name string) {
	if g, ok := gauge(name); ok {
		g.Inc()
	}
}

// CounterInc increments the counter with the given name
func CounterInc(name string) {
	if !initialized {
		return
	}
	countersMu.RLock()
	defer countersMu.RUnlock()
	if c, ok := counters[name]; ok {
		c.Inc()
	}
}
