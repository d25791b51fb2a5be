package geometry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/base/utils"
)

// ErrNoGeometry is returned when no country geometry could be loaded.
var ErrNoGeometry = errors.New("no country geometry loaded")

// SourceOptions configures how one source is read and keyed.
type SourceOptions struct {
	// Path is a file, or a directory for island sources.
	Path string
	// DissolveBy is the property features are grouped by. The group key is
	// also the default country name.
	DissolveBy string
	// CodeFields are tried in order until a valid alpha-3 code is found.
	CodeFields []string
	// NameField overrides the country name property.
	NameField string
	// Layer selects the GeoPackage feature table of island files.
	Layer string
}

// Override replaces a country with specific rows of the split-out sovereign.
type Override struct {
	Code  string
	Name  string
	Admin string
}

// Options configures the geometry loader.
type Options struct {
	Primary  SourceOptions
	Fallback SourceOptions
	Islands  SourceOptions

	// SovereignField and SplitSovereign select the fallback rows that are
	// kept apart before dissolving, for use by overrides.
	SovereignField string
	SplitSovereign string
	// AdminField matches overrides against the split-out rows.
	AdminField string
	Overrides  []Override
}

// DefaultOptions returns the options for Natural Earth and GADM data laid
// out as in the project data directory.
func DefaultOptions() Options {
	return Options{
		Primary: SourceOptions{
			Path:       "data/naturalearth_lowres.geojson",
			DissolveBy: "name",
			CodeFields: []string{"iso_a3", "adm0_a3"},
		},
		Fallback: SourceOptions{
			Path:       "map_units/ne_10m_admin_0_map_units.shp",
			DissolveBy: "SOVEREIGNT",
			CodeFields: []string{"ISO_A3", "ADM0_A3"},
		},
		Islands: SourceOptions{
			Path:       "map_islands",
			DissolveBy: "COUNTRY",
			CodeFields: []string{"GID_0"},
		},
		SovereignField: "SOVEREIGNT",
		SplitSovereign: "China",
		AdminField:     "ADMIN",
		Overrides: []Override{
			{Code: "CHN", Name: "China", Admin: "China"},
			{Code: "HKG", Name: "Hong Kong", Admin: "Hong Kong S.A.R."},
			{Code: "MAC", Name: "Macau", Admin: "Macao S.A.R"},
		},
	}
}

// Load reads all sources and merges them into one collection:
// primary entries first, then fallback entries whose code is not a primary
// code, then island entries whose code is not present yet, and finally the
// overrides, which replace existing entries.
func Load(ctx context.Context, opts Options) (*Collection, error) {
	c := NewCollection()

	// Primary source.
	primary, err := ReadGeoJSON(opts.Primary.Path)
	if err != nil {
		return nil, fmt.Errorf("primary source: %w", err)
	}
	added := 0
	for _, g := range Dissolve(primary, opts.Primary.DissolveBy) {
		country, ok := newCountry(g, opts.Primary, SourcePrimary)
		if !ok {
			continue
		}
		c.putInitial(country)
		added++
	}
	log.Infof("geometry: loaded %d countries from %s", added, opts.Primary.Path)

	// Fallback source.
	split, err := loadFallback(c, opts)
	if err != nil {
		return nil, err
	}

	// Island directory.
	if err := loadIslands(ctx, c, opts.Islands); err != nil {
		return nil, err
	}

	// Overrides.
	applyOverrides(c, split, opts)

	if c.Len() == 0 {
		return nil, ErrNoGeometry
	}
	return c, nil
}

func loadFallback(c *Collection, opts Options) (split []*Feature, err error) {
	if opts.Fallback.Path == "" {
		return nil, nil
	}
	if !utils.PathExists(opts.Fallback.Path) {
		log.Warningf("geometry: fallback source %s not found, skipping", opts.Fallback.Path)
		return nil, nil
	}

	features, err := ReadShapefile(opts.Fallback.Path)
	if err != nil {
		return nil, fmt.Errorf("fallback source: %w", err)
	}

	// Keep the rows of the split-out sovereign before dissolving.
	if opts.SplitSovereign != "" {
		for _, f := range features {
			if f.Property(opts.SovereignField) == opts.SplitSovereign {
				split = append(split, f)
			}
		}
	}

	added := 0
	for _, g := range Dissolve(features, opts.Fallback.DissolveBy) {
		country, ok := newCountry(g, opts.Fallback, SourceFallback)
		if !ok || c.IsInitial(country.Code) {
			continue
		}
		c.Put(country)
		added++
	}
	log.Infof("geometry: added %d fallback countries from %s", added, opts.Fallback.Path)

	return split, nil
}

func loadIslands(ctx context.Context, c *Collection, opts SourceOptions) error {
	if opts.Path == "" {
		return nil
	}
	entries, err := os.ReadDir(opts.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warningf("geometry: island directory %s not found, skipping", opts.Path)
			return nil
		}
		return fmt.Errorf("island source: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".gpkg") {
			files = append(files, filepath.Join(opts.Path, e.Name()))
		}
	}
	sort.Strings(files)

	added := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		features, err := ReadGeoPackage(ctx, file, opts.Layer)
		if err != nil {
			log.Warningf("geometry: skipping island file: %s", err)
			continue
		}
		for _, g := range Dissolve(features, opts.DissolveBy) {
			country, ok := newCountry(g, opts, SourceIsland)
			if !ok || c.Has(country.Code) {
				continue
			}
			c.Put(country)
			added++
		}
	}
	log.Infof("geometry: added %d island countries from %d files", added, len(files))

	return nil
}

func applyOverrides(c *Collection, split []*Feature, opts Options) {
	for _, o := range opts.Overrides {
		var shape orb.MultiPolygon
		for _, f := range split {
			if f.Property(opts.AdminField) == o.Admin {
				shape = append(shape, f.Shape...)
			}
		}
		if len(shape) == 0 {
			log.Debugf("geometry: no rows for override %s (%s), skipping", o.Code, o.Admin)
			continue
		}

		c.Put(&Country{
			Code:   o.Code,
			Name:   o.Name,
			Shape:  shape,
			Source: SourceOverride,
		})
		log.Debugf("geometry: applied override %s", o.Code)
	}
}
