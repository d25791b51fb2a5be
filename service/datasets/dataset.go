package datasets

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v3"
)

// ErrUnknownDataset is returned when a dataset ID is not registered.
var ErrUnknownDataset = errors.New("unknown dataset")

// ErrUnknownCategory is returned when a cell value has no category.
var ErrUnknownCategory = errors.New("unknown category")

//go:embed datasets.yaml
var builtinYAML []byte

// Dataset describes one tax policy classification and how to display it.
type Dataset struct {
	ID           string      `yaml:"id"`
	Title        string      `yaml:"title"`
	Column       string      `yaml:"column"`
	DefaultColor string      `yaml:"default_color"`
	Categories   []*Category `yaml:"categories"`

	defaultColor color.RGBA
	none         *Category
	byKey        map[string]*Category
}

// Category is a single classification value of a dataset.
type Category struct {
	Key         string `yaml:"key"`
	None        bool   `yaml:"none"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`

	rgba color.RGBA
}

// RGBA returns the parsed display color.
func (c *Category) RGBA() color.RGBA {
	return c.rgba
}

// Registry holds datasets by ID.
type Registry struct {
	datasets map[string]*Dataset
}

type datasetFile struct {
	Datasets []*Dataset `yaml:"datasets"`
}

// Builtin returns a registry with the built-in datasets.
func Builtin() *Registry {
	r, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("datasets: invalid built-in definitions: %s", err))
	}
	return r
}

// Parse parses and validates dataset definitions.
func Parse(data []byte) (*Registry, error) {
	file := &datasetFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset definitions: %w", err)
	}

	r := &Registry{datasets: make(map[string]*Dataset, len(file.Datasets))}
	for _, ds := range file.Datasets {
		if err := ds.Validate(); err != nil {
			return nil, err
		}
		r.datasets[strings.ToLower(ds.ID)] = ds
	}
	return r, nil
}

// Merge adds all datasets of other, replacing datasets with the same ID.
func (r *Registry) Merge(other *Registry) {
	for id, ds := range other.datasets {
		r.datasets[id] = ds
	}
}

// Get returns the dataset with the given ID. IDs are case insensitive.
func (r *Registry) Get(id string) (*Dataset, error) {
	ds, ok := r.datasets[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDataset, id, strings.Join(r.IDs(), ", "))
	}
	return ds, nil
}

// IDs returns the sorted IDs of all datasets.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.datasets))
	for _, ds := range r.datasets {
		ids = append(ids, ds.ID)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks the dataset definition and prepares it for lookups.
func (ds *Dataset) Validate() error {
	var errs *multierror.Error

	if ds.ID == "" {
		errs = multierror.Append(errs, errors.New("missing id"))
	}
	if ds.Column == "" {
		errs = multierror.Append(errs, errors.New("missing column"))
	}
	c, err := ParseColor(ds.DefaultColor)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("default color: %w", err))
	}
	ds.defaultColor = c

	ds.none = nil
	ds.byKey = make(map[string]*Category, len(ds.Categories))
	for i, cat := range ds.Categories {
		cat.rgba, err = ParseColor(cat.Color)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("category %d: %w", i, err))
		}

		if cat.None {
			if ds.none != nil {
				errs = multierror.Append(errs, fmt.Errorf("category %d: duplicate none category", i))
			}
			ds.none = cat
			continue
		}

		key := NormalizeValue(cat.Key)
		if key == "" {
			errs = multierror.Append(errs, fmt.Errorf("category %d: missing key", i))
			continue
		}
		if _, ok := ds.byKey[key]; ok {
			errs = multierror.Append(errs, fmt.Errorf("category %d: duplicate key %q", i, key))
		}
		ds.byKey[key] = cat
	}

	// Every dataset has a none category, so unclassified countries show up
	// in the legend.
	if ds.none == nil {
		ds.none = &Category{
			None:        true,
			Color:       ds.DefaultColor,
			Description: "No data",
			rgba:        ds.defaultColor,
		}
		ds.Categories = append(ds.Categories, ds.none)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid dataset %q: %w", ds.ID, err)
	}
	return nil
}

// DefaultRGBA returns the color of countries without data.
func (ds *Dataset) DefaultRGBA() color.RGBA {
	return ds.defaultColor
}

// None returns the category of countries without a value.
func (ds *Dataset) None() *Category {
	return ds.none
}

// Category returns the category for a raw cell value. Empty values map to
// the none category.
func (ds *Dataset) Category(value string) (*Category, error) {
	key := NormalizeValue(value)
	if key == "" {
		return ds.none, nil
	}
	if cat, ok := ds.byKey[key]; ok {
		return cat, nil
	}
	for _, cat := range ds.Categories {
		if !cat.None && strings.EqualFold(NormalizeValue(cat.Key), key) {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("%w %q in dataset %s", ErrUnknownCategory, value, ds.ID)
}

// NormalizeValue trims a cell value and turns integral numbers into their
// integer form, as spreadsheets often store years as floats. Numbers beyond
// the exact float range are kept as given.
func NormalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return value
}
