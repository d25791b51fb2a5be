package animate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"math"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/base/utils/renameio"
	"github.com/safing/taxglobe/service/globe"
)

// Options configures an animation.
type Options struct {
	// Frames is the number of frames of one full rotation.
	Frames int
	// Delay between frames in 100ths of a second.
	Delay int
	// Supersample renders frames this many times larger before scaling
	// them down.
	Supersample int
	// Lat is the latitude the globe is tilted to.
	Lat float64
}

// DefaultOptions returns the default animation options.
func DefaultOptions() Options {
	return Options{
		Frames:      120,
		Delay:       10,
		Supersample: 2,
	}
}

// Animator renders rotating globes.
type Animator struct {
	opts     Options
	style    globe.Style
	renderer *globe.Renderer
}

// New returns an animator producing frames in the given style.
func New(style globe.Style, opts Options) (*Animator, error) {
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("invalid frame delay %d", opts.Delay)
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	renderer, err := globe.NewRenderer(scaleStyle(style, opts.Supersample))
	if err != nil {
		return nil, err
	}
	return &Animator{
		opts:     opts,
		style:    style,
		renderer: renderer,
	}, nil
}

func scaleStyle(s globe.Style, factor int) globe.Style {
	f := float64(factor)
	s.Width *= factor
	s.Height *= factor
	s.Margin *= f
	s.CoastlineWidth *= f
	s.BorderWidth *= f
	s.FontSize *= f
	return s
}

// FrameView returns the view of frame i out of n. The globe turns once from
// -180 to 180 degrees longitude.
func FrameView(i, n int, lat float64) globe.View {
	return globe.View{
		Lon: 180 * (math.Mod(float64(i)/float64(n)*2, 2) - 1),
		Lat: lat,
	}
}

// Palette returns the frame palette: every color of the scene followed by
// the Plan 9 palette, without duplicates and capped at 256 colors.
func Palette(scene *globe.Scene, style globe.Style) color.Palette {
	seen := make(map[color.RGBA]struct{}, 256)
	pal := make(color.Palette, 0, 256)
	add := func(c color.Color) {
		if len(pal) >= 256 {
			return
		}
		r, g, b, a := c.RGBA()
		key := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		pal = append(pal, key)
	}

	for _, c := range scene.Colors(style) {
		add(c)
	}
	for _, c := range palette.Plan9 {
		add(c)
	}
	return pal
}

// Frame renders frame i as a paletted image.
func (a *Animator) Frame(scene *globe.Scene, pal color.Palette, i int) *image.Paletted {
	img := a.renderer.Render(scene, FrameView(i, a.opts.Frames, a.opts.Lat))

	bounds := image.Rect(0, 0, a.style.Width, a.style.Height)
	if a.opts.Supersample > 1 {
		scaled := image.NewRGBA(bounds)
		draw.CatmullRom.Scale(scaled, bounds, img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	frame := image.NewPaletted(bounds, pal)
	draw.Draw(frame, bounds, img, image.Point{}, draw.Src)
	return frame
}

// Run renders all frames of the animation.
func (a *Animator) Run(ctx context.Context, scene *globe.Scene) (*gif.GIF, error) {
	pal := Palette(scene, a.style)
	g := &gif.GIF{
		Image:     make([]*image.Paletted, 0, a.opts.Frames),
		Delay:     make([]int, 0, a.opts.Frames),
		LoopCount: 0,
	}

	for i := range a.opts.Frames {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("animation aborted at frame %d: %w", i, err)
		}
		g.Image = append(g.Image, a.Frame(scene, pal, i))
		g.Delay = append(g.Delay, a.opts.Delay)
		log.Infof("animate: done frame %d/%d", i+1, a.opts.Frames)
	}
	return g, nil
}

// OutputPath returns the default animation file for a dataset.
func OutputPath(dir, datasetID string) string {
	return filepath.Join(dir, datasetID+"_globe.gif")
}

// Save atomically writes the animation to path.
func Save(path string, g *gif.GIF) error {
	err := renameio.Encode(path, 0o644, func(w io.Writer) error {
		return gif.EncodeAll(w, g)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	log.Infof("animate: saved %s with %d frames", path, len(g.Image))
	return nil
}
