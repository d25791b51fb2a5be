package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/service/countries"
)

// ValidationError describes an invalid config value.
type ValidationError struct {
	Key string
	Err error
}

// Error returns the formatted error.
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation of %s failed: %s", ve.Key, ve.Err)
}

// Unwrap returns the wrapped error.
func (ve *ValidationError) Unwrap() error {
	return ve.Err
}

func invalid(key string, format string, a ...interface{}) *ValidationError {
	return &ValidationError{
		Key: key,
		Err: fmt.Errorf(format, a...),
	}
}

// Validate checks the configuration and returns all problems found.
func (cfg *Config) Validate() error {
	var errs *multierror.Error
	add := func(ve *ValidationError) {
		errs = multierror.Append(errs, ve)
	}

	if cfg.Dataset == "" {
		add(invalid("dataset", "must not be empty"))
	}
	if cfg.Sources.Primary.Path == "" {
		add(invalid("sources.primary.path", "must not be empty"))
	}
	if cfg.Data.Path == "" {
		add(invalid("data.path", "must not be empty"))
	}
	if cfg.Data.CodeColumn == "" {
		add(invalid("data.code_column", "must not be empty"))
	}

	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		add(invalid("render", "invalid size %dx%d", cfg.Render.Width, cfg.Render.Height))
	}
	if cfg.Render.Margin < 0 {
		add(invalid("render.margin", "must not be negative"))
	}
	if cfg.Render.Lat < -90 || cfg.Render.Lat > 90 {
		add(invalid("render.lat", "%v out of range", cfg.Render.Lat))
	}

	if cfg.Animation.Width <= 0 || cfg.Animation.Height <= 0 {
		add(invalid("animation", "invalid size %dx%d", cfg.Animation.Width, cfg.Animation.Height))
	}
	if cfg.Animation.Frames <= 0 {
		add(invalid("animation.frames", "must be positive"))
	}
	if cfg.Animation.Delay < 0 {
		add(invalid("animation.delay", "must not be negative"))
	}
	if cfg.Animation.Supersample < 1 || cfg.Animation.Supersample > 8 {
		add(invalid("animation.supersample", "%d not in 1..8", cfg.Animation.Supersample))
	}

	for i, o := range cfg.Overrides {
		if !countries.ValidCode(o.Code) {
			add(invalid(fmt.Sprintf("overrides[%d].code", i), "%q is not an alpha-3 code", o.Code))
		}
		if o.Admin == "" {
			add(invalid(fmt.Sprintf("overrides[%d].admin", i), "must not be empty"))
		}
	}
	for i, code := range cfg.Skip {
		if !countries.ValidCode(countries.NormalizeCode(code)) {
			add(invalid(fmt.Sprintf("skip[%d]", i), "%q is not an alpha-3 code", code))
		}
	}

	if cfg.Log.Level != "" && log.ParseLevel(cfg.Log.Level) == 0 {
		add(invalid("log.level", "unknown level %q", cfg.Log.Level))
	}

	return errs.ErrorOrNil()
}
