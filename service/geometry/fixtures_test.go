package geometry

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// square returns a counter-clockwise unit square ring at x, y.
func square(x, y float64) orb.Ring {
	return orb.Ring{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}}
}

const testPrimaryGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Germany", "iso_a3": "DEU"},
     "geometry": {"type": "Polygon", "coordinates": [[[10,50],[11,50],[11,51],[10,51],[10,50]]]}},
    {"type": "Feature", "properties": {"name": "Norway", "iso_a3": "-99", "adm0_a3": "NOR"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[8,60],[9,60],[9,61],[8,61],[8,60]]],
       [[[15,78],[16,78],[16,79],[15,79],[15,78]]]
     ]}},
    {"type": "Feature", "properties": {"name": "Germany", "iso_a3": "DEU"},
     "geometry": {"type": "Polygon", "coordinates": [[[12,54],[13,54],[13,55],[12,55],[12,54]]]}},
    {"type": "Feature", "properties": {"name": "Nowhere", "iso_a3": "-99", "adm0_a3": "-99"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "China", "iso_a3": "CHN"},
     "geometry": {"type": "Polygon", "coordinates": [[[100,30],[110,30],[110,40],[100,40],[100,30]]]}},
    {"type": "Feature", "properties": {"name": "Null Island", "iso_a3": "NUL"},
     "geometry": {"type": "Point", "coordinates": [0, 0]}}
  ]
}`

func writePrimary(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "lowres.geojson")
	require.NoError(t, os.WriteFile(path, []byte(testPrimaryGeoJSON), 0o644))
	return path
}

type shpRow struct {
	sovereign, admin, iso, adm0 string
	x, y                        float64
}

func writeShapefile(t *testing.T, path string, rows []shpRow) {
	t.Helper()

	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{
		shp.StringField("SOVEREIGNT", 32),
		shp.StringField("ADMIN", 32),
		shp.StringField("ISO_A3", 3),
		shp.StringField("ADM0_A3", 3),
	}))
	for i, row := range rows {
		// Shapefile exteriors are clockwise.
		ring := []shp.Point{
			{X: row.x, Y: row.y}, {X: row.x, Y: row.y + 1},
			{X: row.x + 1, Y: row.y + 1}, {X: row.x + 1, Y: row.y}, {X: row.x, Y: row.y},
		}
		p := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))
		w.Write(&p)
		require.NoError(t, w.WriteAttribute(i, 0, row.sovereign))
		require.NoError(t, w.WriteAttribute(i, 1, row.admin))
		require.NoError(t, w.WriteAttribute(i, 2, row.iso))
		require.NoError(t, w.WriteAttribute(i, 3, row.adm0))
	}
	w.Close()
}

type gpkgRow struct {
	code, name string
	shape      orb.Geometry
}

// gpkgBlob encodes a geometry in GeoPackage binary format without envelope.
func gpkgBlob(t *testing.T, g orb.Geometry) []byte {
	t.Helper()

	body, err := wkb.Marshal(g, binary.LittleEndian)
	require.NoError(t, err)
	header := []byte{'G', 'P', 0, 0x01, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(header[4:], 4326)
	return append(header, body...)
}

func writeGeoPackage(t *testing.T, path string, rows []gpkgRow) {
	t.Helper()

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, conn.Close())
	}()

	require.NoError(t, sqlitex.ExecuteScript(conn, `
CREATE TABLE gpkg_contents (table_name TEXT PRIMARY KEY, data_type TEXT NOT NULL);
CREATE TABLE gpkg_geometry_columns (table_name TEXT NOT NULL, column_name TEXT NOT NULL);
CREATE TABLE "ADM_ADM_0" (fid INTEGER PRIMARY KEY, geom BLOB, GID_0 TEXT, COUNTRY TEXT);
CREATE TABLE "ADM_ADM_1" (fid INTEGER PRIMARY KEY, geom BLOB, GID_1 TEXT);
CREATE TABLE "notes" (text TEXT);
INSERT INTO gpkg_contents VALUES ('ADM_ADM_1', 'features'), ('ADM_ADM_0', 'features'), ('notes', 'attributes');
INSERT INTO gpkg_geometry_columns VALUES ('ADM_ADM_0', 'geom'), ('ADM_ADM_1', 'geom');
`, nil))

	for _, row := range rows {
		require.NoError(t, sqlitex.Execute(conn,
			`INSERT INTO "ADM_ADM_0" (geom, GID_0, COUNTRY) VALUES (?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []interface{}{gpkgBlob(t, row.shape), row.code, row.name}},
		))
	}
}

func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
