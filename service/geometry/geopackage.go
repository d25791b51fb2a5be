package geometry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb/encoding/wkb"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ErrNoFeatureTable is returned when a GeoPackage has no matching feature
// table.
var ErrNoFeatureTable = errors.New("no feature table")

// ReadGeoPackage reads the polygonal features of a GeoPackage layer. If layer
// is empty, the first feature table by name is used.
func ReadGeoPackage(ctx context.Context, path, layer string) ([]*Feature, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to open geopackage %s: %w", path, err)
	}
	defer func() {
		_ = conn.Close()
	}()
	conn.SetInterrupt(ctx.Done())

	table, geomColumn, err := featureTable(conn, layer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var features []*Feature
	err = sqlitex.ExecuteTransient(conn, "SELECT * FROM "+quoteIdent(table), &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			f := &Feature{Properties: make(map[string]string, stmt.ColumnCount())}
			for i := 0; i < stmt.ColumnCount(); i++ {
				name := stmt.ColumnName(i)
				if !strings.EqualFold(name, geomColumn) {
					f.Properties[name] = stmt.ColumnText(i)
					continue
				}
				if stmt.ColumnType(i) == sqlite.TypeNull {
					continue
				}

				blob := make([]byte, stmt.ColumnLen(i))
				stmt.ColumnBytes(i, blob)
				body, err := gpkgWKB(blob)
				if err != nil {
					return err
				}
				if body == nil {
					continue
				}
				g, err := wkb.Unmarshal(body)
				if err != nil {
					return fmt.Errorf("failed to decode geometry: %w", err)
				}
				f.Shape = toMultiPolygon(g)
			}
			if len(f.Shape) > 0 {
				features = append(features, f)
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read layer %s of %s: %w", table, path, err)
	}
	return features, nil
}

// featureTable finds the feature table and its geometry column.
func featureTable(conn *sqlite.Conn, layer string) (table, geomColumn string, err error) {
	err = sqlitex.ExecuteTransient(conn,
		`SELECT table_name FROM gpkg_contents WHERE data_type = 'features' ORDER BY table_name`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				name := stmt.ColumnText(0)
				if table == "" && (layer == "" || strings.EqualFold(name, layer)) {
					table = name
				}
				return nil
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to list feature tables: %w", err)
	}
	if table == "" {
		if layer != "" {
			return "", "", fmt.Errorf("%w named %q", ErrNoFeatureTable, layer)
		}
		return "", "", ErrNoFeatureTable
	}

	err = sqlitex.ExecuteTransient(conn,
		`SELECT column_name FROM gpkg_geometry_columns WHERE table_name = ?`,
		&sqlitex.ExecOptions{
			Args: []interface{}{table},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				geomColumn = stmt.ColumnText(0)
				return nil
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to find geometry column of %s: %w", table, err)
	}
	if geomColumn == "" {
		return "", "", fmt.Errorf("%w: %s has no geometry column", ErrNoFeatureTable, table)
	}
	return table, geomColumn, nil
}

// gpkgWKB strips the GeoPackage binary header and returns the WKB body. It
// returns nil for empty geometries.
func gpkgWKB(blob []byte) ([]byte, error) {
	if len(blob) < 8 || blob[0] != 'G' || blob[1] != 'P' {
		return nil, errors.New("invalid geopackage geometry header")
	}
	flags := blob[3]
	if flags&0x10 != 0 {
		return nil, nil
	}

	var envelope int
	switch (flags >> 1) & 0x07 {
	case 0:
		envelope = 0
	case 1:
		envelope = 32
	case 2, 3:
		envelope = 48
	case 4:
		envelope = 64
	default:
		return nil, fmt.Errorf("invalid geopackage envelope indicator %d", (flags>>1)&0x07)
	}

	start := 8 + envelope
	if len(blob) <= start {
		return nil, errors.New("truncated geopackage geometry")
	}
	return blob[start:], nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
