package globe

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/paulmach/orb"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/base/utils/renameio"
	"github.com/safing/taxglobe/service/countries"
)

// Style configures the look of a rendered globe.
type Style struct {
	Width  int
	Height int
	Margin float64

	Background color.Color
	Ocean      color.Color
	Land       color.Color
	Coastline  color.Color
	Border     color.Color
	Text       color.Color

	CoastlineWidth float64
	BorderWidth    float64
	FontSize       float64

	Legend bool
	Labels bool
}

// StillStyle returns the style used for single images.
func StillStyle() Style {
	return Style{
		Width:          1200,
		Height:         900,
		Margin:         20,
		Background:     color.Black,
		Ocean:          color.RGBA{R: 0, G: 119, B: 190, A: 255},
		Land:           color.RGBA{R: 204, G: 204, B: 204, A: 255},
		Coastline:      color.RGBA{R: 173, G: 216, B: 230, A: 255},
		Border:         color.Black,
		Text:           color.White,
		CoastlineWidth: 5,
		BorderWidth:    1,
		FontSize:       14,
		Legend:         true,
	}
}

// FrameStyle returns the style used for animation frames.
func FrameStyle() Style {
	s := StillStyle()
	s.Width = 800
	s.Height = 600
	s.Background = color.White
	s.Legend = false
	return s
}

// Renderer draws scenes.
type Renderer struct {
	style Style
	face  font.Face
}

// NewRenderer returns a renderer for the given style.
func NewRenderer(style Style) (*Renderer, error) {
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", style.Width, style.Height)
	}
	if 2*style.Margin >= float64(min(style.Width, style.Height)) {
		return nil, fmt.Errorf("margin %.0f leaves no room on a %dx%d canvas", style.Margin, style.Width, style.Height)
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    style.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return &Renderer{
		style: style,
		face:  face,
	}, nil
}

// Style returns the style of the renderer.
func (r *Renderer) Style() Style {
	return r.style
}

// Projection returns the projection used for the given view.
func (r *Renderer) Projection(view View) *Projection {
	s := r.style
	cx := float64(s.Width) / 2
	cy := float64(s.Height) / 2
	radius := float64(min(s.Width, s.Height))/2 - s.Margin
	return NewProjection(view, cx, cy, radius)
}

// Render draws the scene as seen from view.
func (r *Renderer) Render(scene *Scene, view View) image.Image {
	s := r.style
	dc := gg.NewContext(s.Width, s.Height)
	proj := r.Projection(view)
	center := proj.Center()

	dc.SetColor(s.Background)
	dc.Clear()

	// Ocean.
	dc.DrawCircle(center.X, center.Y, proj.Radius())
	dc.SetColor(s.Ocean)
	dc.Fill()

	// Countries are clipped to the disk so limb-pulled vertices stay inside.
	dc.DrawCircle(center.X, center.Y, proj.Radius())
	dc.Clip()

	// Coastlines first. Fills and borders cover their inland half.
	dc.SetColor(s.Coastline)
	dc.SetLineWidth(s.CoastlineWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, shape := range scene.Shapes {
		if r.tracePath(dc, proj, shape.Geometry) {
			dc.Stroke()
		}
	}

	dc.SetFillRule(gg.FillRuleEvenOdd)
	for _, shape := range scene.Shapes {
		if !r.tracePath(dc, proj, shape.Geometry) {
			continue
		}
		if shape.Skipped {
			dc.SetColor(s.Land)
		} else {
			dc.SetColor(shape.Fill)
		}
		dc.FillPreserve()
		dc.SetColor(s.Border)
		dc.SetLineWidth(s.BorderWidth)
		dc.Stroke()
	}
	dc.ResetClip()

	// Limb.
	dc.DrawCircle(center.X, center.Y, proj.Radius())
	dc.SetColor(s.Coastline)
	dc.SetLineWidth(s.CoastlineWidth)
	dc.Stroke()

	if s.Labels {
		r.drawLabels(dc, proj, scene, view)
	}
	if s.Legend {
		r.drawLegend(dc, scene.Legend)
	}

	return dc.Image()
}

// tracePath adds the visible polygons of mp to the current path. It returns
// false if nothing is visible.
func (r *Renderer) tracePath(dc *gg.Context, proj *Projection, mp orb.MultiPolygon) bool {
	drawn := false
	for _, poly := range mp {
		if len(poly) == 0 {
			continue
		}
		for i, ring := range poly {
			pts, visible := proj.ProjectRing(ring)
			if !visible {
				// A hidden exterior hides its holes.
				if i == 0 {
					break
				}
				continue
			}
			if len(pts) < 3 {
				continue
			}
			dc.MoveTo(pts[0].X, pts[0].Y)
			for _, pt := range pts[1:] {
				dc.LineTo(pt.X, pt.Y)
			}
			dc.ClosePath()
			drawn = true
		}
	}
	return drawn
}

func (r *Renderer) drawLabels(dc *gg.Context, proj *Projection, scene *Scene, view View) {
	viewer := countries.Coordinates{Latitude: view.Lat, Longitude: view.Lon}
	dc.SetFontFace(r.face)
	dc.SetColor(r.style.Border)
	for _, shape := range scene.Shapes {
		if shape.Skipped {
			continue
		}
		at, ok := labelPosition(shape)
		if !ok || !countries.Visible(viewer, at) {
			continue
		}
		pt, visible := proj.Project(at.Longitude, at.Latitude)
		if !visible {
			continue
		}
		dc.DrawStringAnchored(shape.Code, pt.X, pt.Y, 0.5, 0.5)
	}
}

// labelPosition prefers the catalog center and falls back to the center of
// the bounding box.
func labelPosition(shape *Shape) (countries.Coordinates, bool) {
	if info, ok := countries.Get(shape.Code); ok {
		return info.Center, true
	}
	if len(shape.Geometry) == 0 {
		return countries.Coordinates{}, false
	}
	c := shape.Geometry.Bound().Center()
	if math.IsNaN(c[0]) || math.IsNaN(c[1]) {
		return countries.Coordinates{}, false
	}
	return countries.Coordinates{Latitude: c[1], Longitude: c[0]}, true
}

// SavePNG atomically writes img to path.
func SavePNG(path string, img image.Image) error {
	err := renameio.Encode(path, 0o644, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	log.Infof("globe: saved %s", path)
	return nil
}
