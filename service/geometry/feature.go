package geometry

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/service/countries"
)

// Feature is a single record read from a geometry source.
type Feature struct {
	Properties map[string]string
	Shape      orb.MultiPolygon
}

// Property returns the trimmed property value.
func (f *Feature) Property(key string) string {
	return strings.TrimSpace(f.Properties[key])
}

// Group is the result of dissolving features by a property.
type Group struct {
	Key   string
	First *Feature
	Shape orb.MultiPolygon
}

// Dissolve merges features that share the value of the given property.
// Groups are returned in order of first appearance and keep the properties
// of their first feature.
func Dissolve(features []*Feature, by string) []*Group {
	var (
		groups []*Group
		index  = make(map[string]*Group)
	)
	for _, f := range features {
		key := f.Property(by)
		g, ok := index[key]
		if !ok {
			g = &Group{Key: key, First: f}
			index[key] = g
			groups = append(groups, g)
		}
		g.Shape = append(g.Shape, f.Shape...)
	}
	return groups
}

// resolveCode returns the first valid alpha-3 code found in the given
// property fields.
func resolveCode(f *Feature, fields []string) string {
	for _, field := range fields {
		code := countries.NormalizeCode(f.Properties[field])
		if countries.ValidCode(code) {
			return code
		}
	}
	return ""
}

// newCountry builds a country from a dissolved group.
func newCountry(g *Group, opts SourceOptions, source SourceKind) (*Country, bool) {
	code := resolveCode(g.First, opts.CodeFields)
	if code == "" {
		log.Debugf("geometry: skipping %s feature %q without valid code", source, g.Key)
		return nil, false
	}
	if len(g.Shape) == 0 {
		log.Debugf("geometry: skipping %s feature %s without polygons", source, code)
		return nil, false
	}

	name := g.Key
	if opts.NameField != "" {
		name = g.First.Property(opts.NameField)
	}
	if name == "" {
		name = countries.Name(code)
	}
	if name == "" {
		name = code
	}

	return &Country{
		Code:   code,
		Name:   name,
		Shape:  g.Shape,
		Source: source,
	}, true
}

// assembleRings builds polygons from a flat list of rings as found in
// shapefiles: clockwise rings are exteriors, counter-clockwise rings are holes
// of the exterior that contains them.
func assembleRings(rings []orb.Ring) orb.MultiPolygon {
	var (
		mp    orb.MultiPolygon
		holes []orb.Ring
	)
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		if !r.Closed() {
			r = append(r, r[0])
		}
		if r.Orientation() == orb.CCW {
			holes = append(holes, r)
			continue
		}
		mp = append(mp, orb.Polygon{r})
	}

nextHole:
	for _, h := range holes {
		for i, p := range mp {
			if planar.RingContains(p[0], h[0]) {
				mp[i] = append(mp[i], h)
				continue nextHole
			}
		}
		// Orphaned holes are treated as exteriors with the wrong winding.
		h.Reverse()
		mp = append(mp, orb.Polygon{h})
	}
	return mp
}

// fromCoordinates converts nested GeoJSON style coordinates to a polygon.
func fromCoordinates(coords [][][]float64) orb.Polygon {
	var p orb.Polygon
	for _, ring := range coords {
		r := make(orb.Ring, 0, len(ring))
		for _, pt := range ring {
			if len(pt) < 2 {
				continue
			}
			r = append(r, orb.Point{pt[0], pt[1]})
		}
		if len(r) < 3 {
			continue
		}
		p = append(p, r)
	}
	return p
}

// toMultiPolygon keeps the polygonal parts of a geometry.
func toMultiPolygon(g orb.Geometry) orb.MultiPolygon {
	switch g := g.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{g}
	case orb.MultiPolygon:
		return g
	case orb.Collection:
		var mp orb.MultiPolygon
		for _, part := range g {
			mp = append(mp, toMultiPolygon(part)...)
		}
		return mp
	default:
		return nil
	}
}
