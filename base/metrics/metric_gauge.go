package metrics

import (
	vm "github.com/VictoriaMetrics/metrics"
)

// Gauge is a gauge metric. If created with a fetch function, the value is
// read from it on every export, otherwise it is set with Set.
type Gauge struct {
	*metricBase
	*vm.Gauge
}

// NewGauge registers a new gauge metric.
func (r *Registry) NewGauge(id string, labels map[string]string, fn func() float64) (*Gauge, error) {
	// Make base.
	base, err := newMetricBase(r, id, labels)
	if err != nil {
		return nil, err
	}

	// Create metric struct.
	m := &Gauge{
		metricBase: base,
	}

	// Create metric in set
	m.Gauge = m.set.NewGauge(m.LabeledID(), fn)

	// Register metric.
	if err := r.register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CurrentValue returns the current gauge value.
func (g *Gauge) CurrentValue() float64 {
	return g.Get()
}
