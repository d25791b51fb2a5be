package globe

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/taxglobe/service/attributes"
	"github.com/safing/taxglobe/service/datasets"
	"github.com/safing/taxglobe/service/geometry"
)

var red = color.RGBA{R: 255, A: 255}

func box(x, y, size float64) orb.MultiPolygon {
	return orb.MultiPolygon{{orb.Ring{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y}}}}
}

// denseBox returns a box with a vertex every step degrees along its edges.
func denseBox(x, y, size, step float64) orb.MultiPolygon {
	var ring orb.Ring
	for d := 0.0; d < size; d += step {
		ring = append(ring, orb.Point{x + d, y})
	}
	for d := 0.0; d < size; d += step {
		ring = append(ring, orb.Point{x + size, y + d})
	}
	for d := 0.0; d < size; d += step {
		ring = append(ring, orb.Point{x + size - d, y + size})
	}
	for d := 0.0; d < size; d += step {
		ring = append(ring, orb.Point{x, y + size - d})
	}
	ring = append(ring, ring[0])
	return orb.MultiPolygon{{ring}}
}

func pixel(img image.Image, x, y int) color.RGBA {
	return toRGBA(img.At(x, y))
}

func testScene(t *testing.T) *Scene {
	t.Helper()

	geo := geometry.NewCollection()
	geo.Put(&geometry.Country{Code: "DEU", Name: "Germany", Shape: box(0, 0, 10)})
	geo.Put(&geometry.Country{Code: "FRA", Name: "France", Shape: box(-20, -20, 5)})
	geo.Put(&geometry.Country{Code: "GUF", Name: "French Guiana", Shape: box(170, 0, 5)})

	ds, err := datasets.Builtin().Get("WealthTax")
	require.NoError(t, err)
	table := &attributes.Table{
		Header: []string{"ISO", "Jurisdiction", "Wealth tax"},
		Rows: [][]string{
			{"DEU", "Germany", "OECD"},
			{"GUF", "French Guiana", "Developing"},
		},
	}
	result, err := attributes.Join(geo, ds, table, attributes.DefaultOptions())
	require.NoError(t, err)

	return NewScene(geo, result, []string{"guf"})
}

func TestProject(t *testing.T) {
	t.Parallel()

	p := NewProjection(View{}, 100, 100, 50)

	pt, visible := p.Project(0, 0)
	assert.True(t, visible)
	assert.InDelta(t, 100, pt.X, 1e-9)
	assert.InDelta(t, 100, pt.Y, 1e-9)

	pt, visible = p.Project(90, 0)
	assert.True(t, visible)
	assert.InDelta(t, 150, pt.X, 1e-9)
	assert.InDelta(t, 100, pt.Y, 1e-9)

	pt, visible = p.Project(0, 90)
	assert.True(t, visible)
	assert.InDelta(t, 100, pt.X, 1e-9)
	assert.InDelta(t, 50, pt.Y, 1e-9)

	// Far side vertices end up on the limb.
	for _, lon := range []float64{100, 120, 180, -135} {
		pt, visible = p.Project(lon, 10)
		assert.False(t, visible, lon)
		assert.InDelta(t, 50, math.Hypot(pt.X-100, pt.Y-100), 1e-9, lon)
	}

	// Rotation and roll.
	p = NewProjection(View{Lon: 90}, 100, 100, 50)
	pt, visible = p.Project(90, 0)
	assert.True(t, visible)
	assert.InDelta(t, 100, pt.X, 1e-9)

	p = NewProjection(View{Roll: 90}, 100, 100, 50)
	pt, _ = p.Project(90, 0)
	assert.InDelta(t, 100, pt.X, 1e-9)
	assert.InDelta(t, 50, pt.Y, 1e-9)
}

func TestProjectRing(t *testing.T) {
	t.Parallel()

	p := NewProjection(View{}, 0, 0, 1)
	_, visible := p.ProjectRing(box(0, 0, 10)[0][0])
	assert.True(t, visible)
	_, visible = p.ProjectRing(box(170, 0, 5)[0][0])
	assert.False(t, visible)
	_, visible = p.ProjectRing(box(85, 0, 10)[0][0])
	assert.True(t, visible, "ring crossing the horizon")
}

func TestNewScene(t *testing.T) {
	t.Parallel()

	scene := testScene(t)
	assert.Equal(t, "Wealth tax", scene.Title)
	require.Len(t, scene.Shapes, 3)

	deu, ok := scene.Shape("deu")
	require.True(t, ok)
	assert.Equal(t, datasets.MustParseColor("#F24C3D"), deu.Fill)
	assert.Equal(t, "EU-W", deu.Region)
	assert.Equal(t, "Germany: Wealth tax (OECD country)", deu.HoverText())
	assert.False(t, deu.Skipped)

	fra, ok := scene.Shape("FRA")
	require.True(t, ok)
	assert.Equal(t, datasets.MustParseColor("#9BABB8"), fra.Fill)
	assert.Equal(t, "France: No wealth tax", fra.HoverText())

	guf, ok := scene.Shape("GUF")
	require.True(t, ok)
	assert.True(t, guf.Skipped)

	require.Len(t, scene.Legend, 3)
	assert.Equal(t, "Wealth tax (OECD country)", scene.Legend[0].Text)
	assert.Equal(t, "No wealth tax", scene.Legend[2].Text)

	_, ok = scene.Shape("CHE")
	assert.False(t, ok)
}

func TestSceneColors(t *testing.T) {
	t.Parallel()

	scene := testScene(t)
	colors := scene.Colors(StillStyle())
	assert.Contains(t, colors, color.Color(datasets.MustParseColor("#F24C3D")))
	assert.Contains(t, colors, color.Color(color.RGBA{R: 0, G: 119, B: 190, A: 255}))

	seen := make(map[color.Color]bool)
	for _, c := range colors {
		assert.False(t, seen[c], "duplicate color %v", c)
		seen[c] = true
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(Style{})
	require.Error(t, err)

	style := StillStyle()
	style.Width, style.Height, style.Margin = 100, 100, 50
	_, err = NewRenderer(style)
	require.Error(t, err)

	_, err = NewRenderer(StillStyle())
	require.NoError(t, err)
}

func TestRender(t *testing.T) {
	t.Parallel()

	style := StillStyle()
	style.Width, style.Height = 200, 200
	style.Legend = false
	r, err := NewRenderer(style)
	require.NoError(t, err)

	scene := &Scene{
		Shapes: []*Shape{
			{Code: "DEU", Fill: red, Geometry: box(0, 0, 10)},
			{Code: "GUF", Fill: red, Geometry: box(20, 20, 10), Skipped: true},
			{Code: "NZL", Fill: red, Geometry: box(175, -45, 5)},
		},
	}

	img := r.Render(scene, View{Lon: 5, Lat: 5})
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
	assert.Equal(t, red, pixel(img, 100, 100), "country at the center")
	assert.Equal(t, toRGBA(style.Background), pixel(img, 2, 2), "background")
	assert.Equal(t, toRGBA(style.Ocean), pixel(img, 100, 160), "ocean")

	// Looking at the skipped country shows land.
	img = r.Render(scene, View{Lon: 25, Lat: 25})
	assert.Equal(t, toRGBA(style.Land), pixel(img, 100, 100))

	// The far side country is drawn once rotated into view.
	img = r.Render(scene, View{Lon: 177.5, Lat: -42.5})
	assert.Equal(t, red, pixel(img, 100, 100))
}

func TestRenderCoastline(t *testing.T) {
	t.Parallel()

	style := StillStyle()
	style.Width, style.Height = 400, 400
	style.Legend = false
	r, err := NewRenderer(style)
	require.NoError(t, err)

	scene := &Scene{Shapes: []*Shape{{Code: "DEU", Fill: red, Geometry: box(-10, -10, 20)}}}
	img := r.Render(scene, View{})

	// The east edge projects to x = 200 + 180*cos(10°)*sin(10°) ≈ 230.8.
	assert.Equal(t, red, pixel(img, 200, 200), "inside")
	assert.Equal(t, toRGBA(style.Coastline), pixel(img, 232, 200), "just outside the east edge")
	assert.Equal(t, toRGBA(style.Ocean), pixel(img, 240, 200), "open sea")
}

func TestRenderAcrossHorizon(t *testing.T) {
	t.Parallel()

	style := StillStyle()
	style.Width, style.Height = 200, 200
	style.Legend = false
	r, err := NewRenderer(style)
	require.NoError(t, err)

	// Spans lon 60 to 120 and so crosses the horizon at lon 90.
	scene := &Scene{Shapes: []*Shape{{Code: "IDN", Fill: red, Geometry: denseBox(60, -30, 60, 2)}}}
	img := r.Render(scene, View{})

	assert.Equal(t, red, pixel(img, 174, 100), "visible part near the limb")
	assert.Equal(t, red, pixel(img, 172, 90), "visible part north of the equator")
	assert.Equal(t, toRGBA(style.Ocean), pixel(img, 100, 100), "view center")
	assert.Equal(t, toRGBA(style.Background), pixel(img, 186, 100), "outside the disk")
	assert.Equal(t, toRGBA(style.Background), pixel(img, 160, 30), "outside the disk above the shape")
}

func TestRenderLegend(t *testing.T) {
	t.Parallel()

	style := StillStyle()
	style.Width, style.Height = 400, 300
	style.Labels = true
	r, err := NewRenderer(style)
	require.NoError(t, err)

	scene := testScene(t)
	img := r.Render(scene, View{})

	// First legend box, inside its outline.
	x, y := r.paper(legendX+legendBox/2, legendY)
	assert.Equal(t, scene.Legend[0].Color, pixel(img, int(x), int(y)))

	x, y = r.paper(0, 0)
	assert.InDelta(t, 20, x, 1e-9)
	assert.InDelta(t, 280, y, 1e-9)
}

func TestSavePNG(t *testing.T) {
	t.Parallel()

	style := FrameStyle()
	r, err := NewRenderer(style)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "globe.png")
	require.NoError(t, SavePNG(path, r.Render(testScene(t), View{})))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}
