package globe

import (
	"image/color"
	"strings"

	"github.com/paulmach/orb"

	"github.com/safing/taxglobe/service/attributes"
	"github.com/safing/taxglobe/service/countries"
	"github.com/safing/taxglobe/service/geometry"
)

// Shape is a country prepared for drawing.
type Shape struct {
	Code        string
	Name        string
	Region      string
	Description string
	Value       string
	Fill        color.RGBA
	Geometry    orb.MultiPolygon
	// Skipped shapes are only drawn as land underlay.
	Skipped bool
}

// HoverText returns the text shown for the country in interactive viewers.
func (s *Shape) HoverText() string {
	return s.Name + ": " + s.Description
}

// LegendItem is one row of the legend.
type LegendItem struct {
	Color color.RGBA
	Text  string
}

// Scene holds everything needed to draw a globe.
type Scene struct {
	Title  string
	Shapes []*Shape
	Legend []LegendItem
}

// NewScene combines geometry and joined attributes. Codes in skip are kept
// as land but not colored.
func NewScene(geo *geometry.Collection, result *attributes.Result, skip []string) *Scene {
	skipped := make(map[string]struct{}, len(skip))
	for _, code := range skip {
		skipped[countries.NormalizeCode(code)] = struct{}{}
	}

	scene := &Scene{
		Title:  result.Dataset.Title,
		Shapes: make([]*Shape, 0, geo.Len()),
	}
	for _, c := range geo.Countries() {
		a := result.Get(c.Code)
		shape := &Shape{
			Code:     c.Code,
			Name:     c.Name,
			Value:    a.Value,
			Fill:     a.Color,
			Geometry: c.Shape,
		}
		if a.Category != nil {
			shape.Description = a.Category.Description
		}
		if info, ok := countries.Get(c.Code); ok {
			shape.Region = info.Region
		}
		if _, ok := skipped[c.Code]; ok {
			shape.Skipped = true
		}
		scene.Shapes = append(scene.Shapes, shape)
	}

	for _, cat := range result.Dataset.Categories {
		scene.Legend = append(scene.Legend, LegendItem{
			Color: cat.RGBA(),
			Text:  cat.Description,
		})
	}
	return scene
}

// Colors returns all distinct colors the scene and style paint with.
func (s *Scene) Colors(style Style) []color.Color {
	seen := make(map[color.RGBA]struct{})
	var out []color.Color
	add := func(c color.Color) {
		rgba := toRGBA(c)
		if _, ok := seen[rgba]; ok {
			return
		}
		seen[rgba] = struct{}{}
		out = append(out, rgba)
	}

	add(style.Background)
	add(style.Ocean)
	add(style.Land)
	add(style.Coastline)
	add(style.Border)
	add(style.Text)
	for _, shape := range s.Shapes {
		if !shape.Skipped {
			add(shape.Fill)
		}
	}
	for _, item := range s.Legend {
		add(item.Color)
	}
	return out
}

// Shape returns the shape with the given code.
func (s *Scene) Shape(code string) (*Shape, bool) {
	code = strings.ToUpper(code)
	for _, shape := range s.Shapes {
		if shape.Code == code {
			return shape, true
		}
	}
	return nil, false
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
