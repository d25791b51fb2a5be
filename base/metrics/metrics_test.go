package metrics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry("tax-globe")
	require.Error(t, err)

	r, err := NewRegistry("taxglobe")
	require.NoError(t, err)
	require.NoError(t, r.AddGlobalLabel("dataset", "CRS"))

	countries, err := r.NewGauge("geometry/countries", map[string]string{"source": "primary"}, nil)
	require.NoError(t, err)
	countries.Set(177)
	assert.Equal(t, `taxglobe_geometry_countries{dataset="CRS",source="primary"}`, countries.LabeledID())
	assert.InDelta(t, 177, countries.CurrentValue(), 1e-9)

	frames, err := r.NewCounter("animate/frames/total", nil)
	require.NoError(t, err)
	frames.Add(120)
	assert.Equal(t, uint64(120), frames.CurrentValue())

	fetched := uint64(3)
	_, err = r.NewFetchingCounter("attributes/unmatched/total", nil, func() uint64 { return fetched })
	require.NoError(t, err)

	_, err = r.NewCounter("animate/frames/total", nil)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	_, err = r.NewCounter("bad-name", nil)
	require.Error(t, err)
	_, err = r.NewFetchingCounter("empty", nil, nil)
	require.ErrorIs(t, err, ErrInvalidOptions)
	require.ErrorIs(t, r.AddGlobalLabel("late", "x"), ErrAlreadyStarted)

	fetched = 5
	buf := new(bytes.Buffer)
	r.WritePrometheus(buf)
	out := buf.String()
	assert.Contains(t, out, `taxglobe_geometry_countries{dataset="CRS",source="primary"} 177`)
	assert.Contains(t, out, `taxglobe_animate_frames_total{dataset="CRS"} 120`)
	assert.Contains(t, out, `taxglobe_attributes_unmatched_total{dataset="CRS"} 5`)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry("taxglobe")
	require.NoError(t, err)
	require.NoError(t, r.RegisterLogMetrics())

	path := filepath.Join(t.TempDir(), "metrics", "taxglobe.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "taxglobe_logs_warning_total ")
	assert.Contains(t, string(data), "taxglobe_logs_critical_total ")
}
