package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// labScale maps go-colorful's Lab ranges (L in [0,1]) onto conventional
// CIELAB units (L in [0,100]) so that Euclidean distance is ΔE76.
const labScale = 100

// FromImage converts any image.Image into a 3-band (R,G,B) Planar[uint8].
// Samples are alpha-premultiplied, as image/color's RGBA method defines
// them, and alpha is then dropped, so a colour yields the same bands in
// every container type. *image.RGBA is read directly; everything else is
// first rendered into an RGBA buffer.
func FromImage(img image.Image) (*Planar[uint8], error) {
	if img == nil {
		return nil, fmt.Errorf("FromImage: nil image: %w", ErrInvalidImage)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("FromImage: %d×%d: %w", w, h, ErrInvalidImage)
	}

	m, ok := img.(*image.RGBA)
	if !ok {
		m = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
		b = m.Bounds()
	}
	pix, stride := m.Pix[m.PixOffset(b.Min.X, b.Min.Y):], m.Stride

	out := NewPlanar[uint8](w, h, 3)
	r, g, bl := out.Bands[0], out.Bands[1], out.Bands[2]
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+4*w]
		dst := y * w
		for x := 0; x < w; x++ {
			r[dst+x] = row[4*x]
			g[dst+x] = row[4*x+1]
			bl[dst+x] = row[4*x+2]
		}
	}
	return out, nil
}

// GrayFromImage converts any image.Image into a Gray[uint8] using the
// standard luminance model.
func GrayFromImage(img image.Image) (*Gray[uint8], error) {
	if img == nil {
		return nil, fmt.Errorf("GrayFromImage: nil image: %w", ErrInvalidImage)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("GrayFromImage: %d×%d: %w", w, h, ErrInvalidImage)
	}
	out := NewGray[uint8](w, h)
	if m, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*w:(y+1)*w], m.Pix[off:off+w])
		}
		return out, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*w+x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
	}
	return out, nil
}

// ToLab converts a 3-band sRGB image into CIELAB (L*, a*, b*) float32 bands.
// The result is tightly packed regardless of the input stride.
func ToLab(rgb *Planar[uint8]) (*Planar[float32], error) {
	if err := rgb.Validate(); err != nil {
		return nil, err
	}
	if rgb.NumBands() != 3 {
		return nil, fmt.Errorf("ToLab: %d bands: %w", rgb.NumBands(), ErrBandCount)
	}
	w, h := rgb.Width, rgb.Height
	out := NewPlanar[float32](w, h, 3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := rgb.Index(x, y)
			c := colorful.Color{
				R: float64(rgb.Bands[0][src]) / 255,
				G: float64(rgb.Bands[1][src]) / 255,
				B: float64(rgb.Bands[2][src]) / 255,
			}
			l, a, bb := c.Lab()
			dst := y*w + x
			out.Bands[0][dst] = float32(l * labScale)
			out.Bands[1][dst] = float32(a * labScale)
			out.Bands[2][dst] = float32(bb * labScale)
		}
	}
	return out, nil
}
