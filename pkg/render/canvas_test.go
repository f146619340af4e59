package render

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(10, 20)

	if c.Width() != 10 || c.Height() != 20 {
		t.Errorf("size = %dx%d, want 10x20", c.Width(), c.Height())
	}
	for y := range c.Height() {
		for x := range c.Width() {
			if px := c.PixelAt(x, y); px != Black {
				t.Fatalf("PixelAt(%d, %d) = %v, want black", x, y, px)
			}
		}
	}
}

func TestNewCanvasNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative size")
		}
	}()
	NewCanvas(-1, 5)
}

func TestWritePixel(t *testing.T) {
	c := NewCanvas(10, 20)
	red := NewColor(1, 0, 0)

	c.WritePixel(2, 3, red)

	if got := c.PixelAt(2, 3); got != red {
		t.Errorf("PixelAt(2, 3) = %v, want %v", got, red)
	}
	// Row-major storage: (2, 3) lives in row 3, column 2.
	if got := c.pixels[3*10+2]; got != red {
		t.Errorf("pixels[y*width+x] = %v, want %v", got, red)
	}
	if got := c.PixelAt(3, 2); got != Black {
		t.Errorf("PixelAt(3, 2) = %v, x and y must not be swapped", got)
	}
}

func TestWritePixelOutOfBoundsPanics(t *testing.T) {
	c := NewCanvas(4, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"x == width", 4, 0},
		{"y == height", 0, 3},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"far away", 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("WritePixel(%d, %d) should panic", tc.x, tc.y)
				}
			}()
			c.WritePixel(tc.x, tc.y, White)
		})
		t.Run(tc.name+" read", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("PixelAt(%d, %d) should panic", tc.x, tc.y)
				}
			}()
			c.PixelAt(tc.x, tc.y)
		})
	}
}

func TestSafeWritePixel(t *testing.T) {
	c := NewCanvas(4, 3)

	c.SafeWritePixel(1, 2, White)
	if got := c.PixelAt(1, 2); got != White {
		t.Errorf("in-bounds SafeWritePixel did not write: %v", got)
	}

	for _, p := range [][2]int{{4, 0}, {0, 3}, {4, 3}, {-1, 0}, {0, -1}, {1000, 1000}} {
		c.SafeWritePixel(p[0], p[1], Red)
	}
	for y := range c.Height() {
		for x := range c.Width() {
			want := Black
			if x == 1 && y == 2 {
				want = White
			}
			if got := c.PixelAt(x, y); got != want {
				t.Errorf("PixelAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Clear(Blue)
	for y := range 2 {
		for x := range 3 {
			if c.PixelAt(x, y) != Blue {
				t.Fatalf("PixelAt(%d, %d) not cleared", x, y)
			}
		}
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 0, 1, 3, 1, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical", 2, 0, 2, 2, [][2]int{{2, 0}, {2, 1}, {2, 2}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 3, 3, 0, 0, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 1, 1, 1, 1, [][2]int{{1, 1}}},
		{"clipped", -2, 0, 1, 0, [][2]int{{0, 0}, {1, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(4, 4)
			c.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, White)

			want := make(map[[2]int]bool)
			for _, p := range tc.want {
				want[p] = true
			}
			for y := range 4 {
				for x := range 4 {
					lit := c.PixelAt(x, y) == White
					if lit != want[[2]int{x, y}] {
						t.Errorf("pixel (%d, %d) lit = %v, want %v", x, y, lit, !lit)
					}
				}
			}
		})
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(3, 2)
	c.WritePixel(2, 1, NewColor(1, 0.5, 0))

	var img image.Image = c
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if got := img.At(2, 1); got != (color.RGBA{255, 128, 0, 255}) {
		t.Errorf("At(2, 1) = %v", got)
	}
	if got := img.At(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("At(0, 0) = %v, want opaque black", got)
	}
	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("At outside bounds = %v, want transparent", got)
	}
}

func TestScaled(t *testing.T) {
	c := NewCanvas(4, 2)
	c.WritePixel(0, 0, Red)
	c.WritePixel(3, 1, Blue)

	half := c.Scaled(2, 1)
	if half.Width() != 2 || half.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", half.Width(), half.Height())
	}
	if half.PixelAt(0, 0) != Red {
		t.Errorf("PixelAt(0, 0) = %v, want red", half.PixelAt(0, 0))
	}

	double := c.Scaled(8, 4)
	if double.PixelAt(7, 3) != Blue || double.PixelAt(1, 1) != Red {
		t.Error("upscaling should repeat source pixels")
	}
	if c.PixelAt(3, 1) != Blue {
		t.Error("Scaled must not modify the source")
	}
}

func TestFit(t *testing.T) {
	c := NewCanvas(900, 550)

	if got := c.Fit(1000, 1000); got != c {
		t.Error("a canvas that fits should be returned as is")
	}

	got := c.Fit(180, 100)
	if got.Width() > 180 || got.Height() > 100 {
		t.Errorf("Fit(180, 100) = %dx%d", got.Width(), got.Height())
	}
	if got.Width() != 163 || got.Height() != 100 {
		t.Errorf("Fit should keep aspect ratio, got %dx%d", got.Width(), got.Height())
	}
}
