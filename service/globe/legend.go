package globe

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Legend layout in paper coordinates: 0..1 across the area inside the
// margin, y pointing up.
const (
	legendX       = 0.75
	legendY       = 0.95
	legendStep    = 0.03
	legendBox     = 0.015
	legendBoxHalf = 0.01
	legendTextGap = 0.02
)

// paper maps paper coordinates to the canvas.
func (r *Renderer) paper(x, y float64) (float64, float64) {
	s := r.style
	w := float64(s.Width) - 2*s.Margin
	h := float64(s.Height) - 2*s.Margin
	return s.Margin + x*w, float64(s.Height) - s.Margin - y*h
}

func (r *Renderer) drawLegend(dc *gg.Context, items []LegendItem) {
	dc.SetFontFace(r.face)
	dc.SetLineWidth(1)

	for i, item := range items {
		y := legendY - float64(i)*legendStep

		x0, y0 := r.paper(legendX, y+legendBoxHalf)
		x1, y1 := r.paper(legendX+legendBox, y-legendBoxHalf)
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		dc.SetColor(item.Color)
		dc.FillPreserve()
		dc.SetColor(color.White)
		dc.Stroke()

		tx, ty := r.paper(legendX+legendTextGap, y)
		dc.SetColor(r.style.Text)
		dc.DrawStringAnchored(item.Text, tx, ty, 0, 0.5)
	}
}
