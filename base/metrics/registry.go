package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/safing/taxglobe/base/utils/renameio"
)

var (
	// ErrAlreadyStarted is returned when an operation is only valid before the
	// first metric is registered, and is called after.
	ErrAlreadyStarted = errors.New("can only be changed before first metric is registered")

	// ErrAlreadyRegistered is returned when a metric with the same ID is
	// registered again.
	ErrAlreadyRegistered = errors.New("metric already registered")

	// ErrInvalidOptions is returned when invalid options where provided.
	ErrInvalidOptions = errors.New("invalid options")
)

// Registry holds the metrics of one run.
type Registry struct {
	lock sync.RWMutex

	namespace    string
	globalLabels map[string]string
	metrics      []Metric
}

// NewRegistry returns an empty registry. All metric names are prefixed with
// namespace.
func NewRegistry(namespace string) (*Registry, error) {
	if namespace != "" && !prometheusFormat.MatchString(namespace) {
		return nil, fmt.Errorf("metric namespace %q must match %s", namespace, PrometheusFormatRequirement)
	}
	return &Registry{
		namespace:    namespace,
		globalLabels: make(map[string]string),
	}, nil
}

// AddGlobalLabel adds a label to every metric. It must be called before the
// first metric is registered.
func (r *Registry) AddGlobalLabel(name, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if len(r.metrics) > 0 {
		return ErrAlreadyStarted
	}
	if !prometheusFormat.MatchString(name) {
		return fmt.Errorf("metric label name %q must match %s", name, PrometheusFormatRequirement)
	}
	r.globalLabels[name] = value
	return nil
}

func (r *Registry) register(m Metric) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, registered := range r.metrics {
		if registered.LabeledID() == m.LabeledID() {
			return ErrAlreadyRegistered
		}
	}
	r.metrics = append(r.metrics, m)
	sort.Slice(r.metrics, func(i, j int) bool {
		return r.metrics[i].LabeledID() < r.metrics[j].LabeledID()
	})
	return nil
}

// WritePrometheus writes all metrics in the prometheus text format.
func (r *Registry) WritePrometheus(w io.Writer) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, m := range r.metrics {
		m.WritePrometheus(w)
	}
}

// WriteFile atomically writes all metrics to path, for example for the node
// exporter textfile collector.
func (r *Registry) WriteFile(path string) error {
	buf := new(bytes.Buffer)
	r.WritePrometheus(buf)
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
