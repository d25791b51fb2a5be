package geometry

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// ReadGeoJSON reads the polygonal features of a GeoJSON FeatureCollection.
func ReadGeoJSON(path string) ([]*Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON parses the polygonal features of a GeoJSON FeatureCollection.
func ParseGeoJSON(data []byte) ([]*Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feature collection: %w", err)
	}

	features := make([]*Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}

		var shape orb.MultiPolygon
		switch {
		case f.Geometry.IsPolygon():
			if p := fromCoordinates(f.Geometry.Polygon); len(p) > 0 {
				shape = append(shape, p)
			}
		case f.Geometry.IsMultiPolygon():
			for _, coords := range f.Geometry.MultiPolygon {
				if p := fromCoordinates(coords); len(p) > 0 {
					shape = append(shape, p)
				}
			}
		default:
			continue
		}

		props := make(map[string]string, len(f.Properties))
		for k, v := range f.Properties {
			if v == nil {
				continue
			}
			props[k] = fmt.Sprint(v)
		}
		features = append(features, &Feature{Properties: props, Shape: shape})
	}
	return features, nil
}
