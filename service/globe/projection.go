package globe

import (
	"math"

	"github.com/paulmach/orb"
)

const degToRad = math.Pi / 180

// View is the rotation of the globe: the point at Lon/Lat faces the viewer
// and Roll turns the image around that point, all in degrees.
type View struct {
	Lon  float64
	Lat  float64
	Roll float64
}

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Projection is an orthographic projection onto a disk on the canvas.
type Projection struct {
	cx, cy, radius float64

	lon0             float64
	sinLat0, cosLat0 float64
	sinRoll, cosRoll float64
}

// NewProjection returns an orthographic projection of the given view onto
// the disk centered at cx, cy.
func NewProjection(view View, cx, cy, radius float64) *Projection {
	return &Projection{
		cx:      cx,
		cy:      cy,
		radius:  radius,
		lon0:    view.Lon * degToRad,
		sinLat0: math.Sin(view.Lat * degToRad),
		cosLat0: math.Cos(view.Lat * degToRad),
		sinRoll: math.Sin(view.Roll * degToRad),
		cosRoll: math.Cos(view.Roll * degToRad),
	}
}

// Center returns the center of the globe disk.
func (p *Projection) Center() Point {
	return Point{p.cx, p.cy}
}

// Radius returns the radius of the globe disk.
func (p *Projection) Radius() float64 {
	return p.radius
}

// Project maps lon/lat degrees to the canvas. Points on the far side are
// pulled onto the limb along their azimuth and reported as not visible.
func (p *Projection) Project(lon, lat float64) (pt Point, visible bool) {
	lam := lon*degToRad - p.lon0
	phi := lat * degToRad
	sinPhi, cosPhi := math.Sincos(phi)
	sinLam, cosLam := math.Sincos(lam)

	x := cosPhi * sinLam
	y := p.cosLat0*sinPhi - p.sinLat0*cosPhi*cosLam
	cosC := p.sinLat0*sinPhi + p.cosLat0*cosPhi*cosLam

	visible = cosC >= 0
	if !visible {
		d := math.Hypot(x, y)
		if d == 0 {
			x, y = 1, 0
		} else {
			x, y = x/d, y/d
		}
	}

	// Roll, then flip y for canvas coordinates.
	rx := x*p.cosRoll - y*p.sinRoll
	ry := x*p.sinRoll + y*p.cosRoll
	return Point{
		X: p.cx + rx*p.radius,
		Y: p.cy - ry*p.radius,
	}, visible
}

// ProjectRing projects a ring of lon/lat points. It returns false if no
// point of the ring is visible.
func (p *Projection) ProjectRing(ring orb.Ring) ([]Point, bool) {
	out := make([]Point, len(ring))
	anyVisible := false
	for i, pt := range ring {
		var visible bool
		out[i], visible = p.Project(pt.Lon(), pt.Lat())
		anyVisible = anyVisible || visible
	}
	return out, anyVisible
}
