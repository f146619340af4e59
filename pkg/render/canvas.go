// Package render provides the colour model and pixel canvas of the tracer.
package render

import (
	"fmt"
	"image"
	"image/color"
)

// Canvas is a fixed-size grid of colours stored row-major, matching the
// row-by-row layout of image files. A Canvas is not safe for concurrent
// writes.
type Canvas struct {
	width  int
	height int
	pixels []Color // pixels[y*width+x]
}

// NewCanvas creates a black canvas. It panics on negative dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("render: invalid canvas size %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) mustIndex(x, y int) int {
	if !c.inBounds(x, y) {
		panic(fmt.Sprintf("render: pixel (%d, %d) out of bounds for %dx%d canvas", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// WritePixel sets the pixel at (x, y). Coordinates outside the canvas are
// a programming error and panic; use SafeWritePixel for computed
// coordinates that may fall off the canvas.
func (c *Canvas) WritePixel(x, y int, col Color) {
	c.pixels[c.mustIndex(x, y)] = col
}

// SafeWritePixel sets the pixel at (x, y), silently ignoring coordinates
// outside the canvas.
func (c *Canvas) SafeWritePixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the pixel at (x, y). It panics outside the canvas.
func (c *Canvas) PixelAt(x, y int) Color {
	return c.pixels[c.mustIndex(x, y)]
}

// Clear fills the canvas with a solid colour.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. Off-canvas segments are clipped per pixel.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SafeWritePixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image. Unlike PixelAt it returns transparent black
// outside the canvas, as image.Image requires.
func (c *Canvas) At(x, y int) color.Color {
	if !c.inBounds(x, y) {
		return color.RGBA{}
	}
	return c.pixels[y*c.width+x].ToRGBA()
}

// Scaled returns a nearest-neighbour resampled copy of the canvas.
func (c *Canvas) Scaled(width, height int) *Canvas {
	out := NewCanvas(width, height)
	if c.width == 0 || c.height == 0 {
		return out
	}
	for y := range height {
		sy := y * c.height / height
		for x := range width {
			sx := x * c.width / width
			out.pixels[y*width+x] = c.pixels[sy*c.width+sx]
		}
	}
	return out
}

// Fit returns the canvas scaled down, keeping its aspect ratio, so that it
// is no larger than width x height. A canvas that already fits is returned
// unchanged.
func (c *Canvas) Fit(width, height int) *Canvas {
	if c.width <= width && c.height <= height {
		return c
	}
	if width*c.height <= height*c.width {
		return c.Scaled(width, max(1, c.height*width/c.width))
	}
	return c.Scaled(max(1, c.width*height/c.height), height)
}
