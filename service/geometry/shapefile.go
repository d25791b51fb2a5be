package geometry

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// ReadShapefile reads the polygon records and attributes of an ESRI
// shapefile. The .dbf file must sit next to the .shp file.
func ReadShapefile(path string) ([]*Feature, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shapefile %s: %w", path, err)
	}
	defer func() {
		_ = r.Close()
	}()

	fields := r.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.TrimSpace(f.String())
	}

	var features []*Feature
	for r.Next() {
		n, shape := r.Shape()

		var rings []orb.Ring
		switch s := shape.(type) {
		case *shp.Polygon:
			rings = shpRings(s.Parts, s.Points)
		case *shp.PolygonZ:
			rings = shpRings(s.Parts, s.Points)
		case *shp.PolygonM:
			rings = shpRings(s.Parts, s.Points)
		default:
			continue
		}

		props := make(map[string]string, len(names))
		for i, name := range names {
			props[name] = strings.TrimSpace(r.ReadAttribute(n, i))
		}
		features = append(features, &Feature{
			Properties: props,
			Shape:      assembleRings(rings),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shapefile %s: %w", path, err)
	}

	return features, nil
}

// shpRings splits the point list of a shapefile polygon into its parts.
func shpRings(parts []int32, points []shp.Point) []orb.Ring {
	rings := make([]orb.Ring, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start > end || int(end) > len(points) {
			continue
		}
		ring := make(orb.Ring, 0, end-start)
		for _, p := range points[start:end] {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}
