package metrics

import (
	"github.com/safing/taxglobe/base/log"
)

// RegisterLogMetrics adds counters of the warning, error and critical log
// lines written so far.
func (r *Registry) RegisterLogMetrics() (err error) {
	_, err = r.NewFetchingCounter("logs/warning/total", nil, log.TotalWarningLogLines)
	if err != nil {
		return err
	}

	_, err = r.NewFetchingCounter("logs/error/total", nil, log.TotalErrorLogLines)
	if err != nil {
		return err
	}

	_, err = r.NewFetchingCounter("logs/critical/total", nil, log.TotalCriticalLogLines)
	if err != nil {
		return err
	}

	return nil
}
