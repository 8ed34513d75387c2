package segment

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spaces successive palette hues so neighbours never share one.
const goldenAngle = 137.50776405003785

// Palette returns n distinct, deterministic colours of fixed saturation and
// value with hues stepped by the golden angle.
func Palette(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		h := math.Mod(float64(i)*goldenAngle, 360)
		r, g, b := colorful.Hsv(h, 0.65, 0.95).Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out
}

// Render paints every pixel with colors[label]. colors must have at least
// NumSegments entries; Palette and Stats.Colors both qualify.
func (r *Result) Render(colors []color.RGBA) (*image.RGBA, error) {
	if len(colors) < r.NumSegments() {
		return nil, fmt.Errorf("%s: %d colours for %d segments: %w",
			methodRender, len(colors), r.NumSegments(), ErrInvalidInput)
	}
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x, id := range r.Labels[y*r.Width : (y+1)*r.Width] {
			c := colors[id]
			row[4*x], row[4*x+1], row[4*x+2], row[4*x+3] = c.R, c.G, c.B, c.A
		}
	}
	return img, nil
}
