package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/taigrr/tracer/pkg/math3d"
)

// MaxChannel is the largest quantised channel value.
const MaxChannel = 255

// Color is a linear RGB colour. Channels are nominally in [0, 1] but are
// not clamped; light arithmetic may push them outside that range.
type Color struct {
	R, G, B float32
}

// NewColor creates a colour from its channels.
func NewColor(r, g, b float32) Color {
	return Color{r, g, b}
}

// Colors for convenience
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Yellow  = Color{1, 1, 0}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
	Gray    = Color{0.5, 0.5, 0.5}
)

// RGB creates a colour from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float32(r) / MaxChannel, float32(g) / MaxChannel, float32(b) / MaxChannel}
}

// ParseRGB parses an "R,G,B" triple of 8-bit values.
func ParseRGB(s string) (Color, error) {
	var (
		r, g, b uint8
		rest    string
	)
	n, err := fmt.Sscanf(s, "%d,%d,%d%s", &r, &g, &b, &rest)
	switch {
	case n < 3:
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	case n > 3:
		return Color{}, fmt.Errorf("parse color %q: trailing %q", s, rest)
	}
	return RGB(r, g, b), nil
}

// FromColor converts a standard color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff}
}

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the channel-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the channel-wise (Hadamard) product, used to filter light
// through a surface colour.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Equal reports whether each channel differs by less than ColorEpsilon.
func (c Color) Equal(o Color) bool {
	return math3d.ApproxEqual(c.R, o.R, math3d.ColorEpsilon) &&
		math3d.ApproxEqual(c.G, o.G, math3d.ColorEpsilon) &&
		math3d.ApproxEqual(c.B, o.B, math3d.ColorEpsilon)
}

// EncodeChannel scales v by 255, rounds half away from zero and clamps the
// result to [0, 255]. NaN encodes as 0.
func EncodeChannel(v float32) int {
	n := math.Round(float64(v) * MaxChannel)
	switch {
	case math.IsNaN(n), n < 0:
		return 0
	case n > MaxChannel:
		return MaxChannel
	}
	return int(n)
}

// PPM returns the quantised "R G B" text used in plain PPM bodies.
func (c Color) PPM() string {
	return string(c.appendPPM(nil))
}

func (c Color) appendPPM(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(EncodeChannel(c.R)), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(EncodeChannel(c.G)), 10)
	dst = append(dst, ' ')
	return strconv.AppendInt(dst, int64(EncodeChannel(c.B)), 10)
}

// ToRGBA quantises the colour to an opaque 8-bit color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(EncodeChannel(c.R)),
		G: uint8(EncodeChannel(c.G)),
		B: uint8(EncodeChannel(c.B)),
		A: 255,
	}
}

// RGBA implements color.Color using the same quantisation as PPM output.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}
