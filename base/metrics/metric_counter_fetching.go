package metrics

import (
	"fmt"
	"io"

	vm "github.com/VictoriaMetrics/metrics"
)

// FetchingCounter is a counter metric that fetches the values via a function call.
type FetchingCounter struct {
	*metricBase
	counter  *vm.Counter
	fetchCnt func() uint64
}

// NewFetchingCounter registers a new fetching counter metric.
func (r *Registry) NewFetchingCounter(id string, labels map[string]string, fn func() uint64) (*FetchingCounter, error) {
	// Check if a fetch function is provided.
	if fn == nil {
		return nil, fmt.Errorf("%w: no fetch function provided", ErrInvalidOptions)
	}

	// Make base.
	base, err := newMetricBase(r, id, labels)
	if err != nil {
		return nil, err
	}

	// Create metric struct.
	m := &FetchingCounter{
		metricBase: base,
		fetchCnt:   fn,
	}

	// Create metric in set
	m.counter = m.set.NewCounter(m.LabeledID())

	// Register metric.
	if err := r.register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CurrentValue returns the current counter value.
func (fc *FetchingCounter) CurrentValue() uint64 {
	return fc.fetchCnt()
}

// WritePrometheus writes the metric in the prometheus format to the given writer.
func (fc *FetchingCounter) WritePrometheus(w io.Writer) {
	fc.counter.Set(fc.fetchCnt())
	fc.metricBase.set.WritePrometheus(w)
}
