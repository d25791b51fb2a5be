package main

import (
	"time"

	"github.com/safing/taxglobe/base/config"
	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/base/metrics"
	"github.com/safing/taxglobe/service/attributes"
	"github.com/safing/taxglobe/service/geometry"
)

// runMetrics collects the metrics of one command run. A nil *runMetrics
// discards everything.
type runMetrics struct {
	registry *metrics.Registry
	path     string
	started  time.Time
}

var stats *runMetrics

func startMetrics(cfg *config.Config) (*runMetrics, error) {
	if cfg.MetricsFile == "" {
		return nil, nil //nolint:nilnil
	}

	registry, err := metrics.NewRegistry("taxglobe")
	if err != nil {
		return nil, err
	}
	if err := registry.AddGlobalLabel("dataset", cfg.Dataset); err != nil {
		return nil, err
	}
	if err := registry.RegisterLogMetrics(); err != nil {
		return nil, err
	}
	return &runMetrics{
		registry: registry,
		path:     cfg.MetricsFile,
		started:  time.Now(),
	}, nil
}

func (m *runMetrics) gauge(id string, labels map[string]string, value float64) {
	if m == nil {
		return
	}
	g, err := m.registry.NewGauge(id, labels, nil)
	if err != nil {
		log.Warningf("taxglobe: failed to register metric %s: %s", id, err)
		return
	}
	g.Set(value)
}

func (m *runMetrics) geometry(geo *geometry.Collection) {
	if m == nil {
		return
	}
	perSource := make(map[geometry.SourceKind]int)
	for _, c := range geo.Countries() {
		perSource[c.Source]++
	}
	for _, source := range []geometry.SourceKind{
		geometry.SourcePrimary,
		geometry.SourceFallback,
		geometry.SourceIsland,
		geometry.SourceOverride,
	} {
		m.gauge("geometry/countries", map[string]string{"source": string(source)}, float64(perSource[source]))
	}
}

func (m *runMetrics) join(result *attributes.Result) {
	if m == nil {
		return
	}
	m.gauge("attributes/rows", nil, float64(result.Rows))
	m.gauge("attributes/unmatched", nil, float64(len(result.Unmatched)))
}

func (m *runMetrics) frames(n int) {
	m.gauge("animate/frames", nil, float64(n))
}

// finish records the outcome and writes the metrics file.
func (m *runMetrics) finish(runErr error) {
	if m == nil {
		return
	}
	success := 1.0
	if runErr != nil {
		success = 0
	}
	m.gauge("run/success", nil, success)
	m.gauge("run/duration/seconds", nil, time.Since(m.started).Seconds())

	if err := m.registry.WriteFile(m.path); err != nil {
		log.Errorf("taxglobe: %s", err)
		return
	}
	log.Debugf("taxglobe: wrote metrics to %s", m.path)
}
