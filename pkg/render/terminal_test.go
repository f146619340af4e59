package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

// cellRecorder captures cells written by Draw.
type cellRecorder map[[2]int]*uv.Cell

func (r cellRecorder) SetCell(x, y int, c *uv.Cell) { r[[2]int{x, y}] = c }

func TestDrawHalfBlocks(t *testing.T) {
	c := NewCanvas(2, 3)
	c.WritePixel(0, 0, Red)
	c.WritePixel(0, 1, Blue)
	c.WritePixel(1, 2, White)

	rec := cellRecorder{}
	c.Draw(rec, uv.Rect(0, 0, 10, 10))

	cols, rows := c.TerminalSize()
	if cols != 2 || rows != 2 {
		t.Fatalf("TerminalSize() = (%d, %d), want (2, 2)", cols, rows)
	}
	if len(rec) != cols*rows {
		t.Fatalf("Draw wrote %d cells, want %d", len(rec), cols*rows)
	}

	cell := rec[[2]int{0, 0}]
	if cell.Content != "▀" {
		t.Errorf("content = %q, want upper half block", cell.Content)
	}
	if cell.Style.Fg != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("top pixel fg = %v, want red", cell.Style.Fg)
	}
	if cell.Style.Bg != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("bottom pixel bg = %v, want blue", cell.Style.Bg)
	}

	// Odd height: the last terminal row has no bottom pixel.
	last := rec[[2]int{1, 1}]
	if last.Style.Fg != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("last row fg = %v, want white", last.Style.Fg)
	}
	if last.Style.Bg != nil {
		t.Errorf("last row bg = %v, want nil", last.Style.Bg)
	}
}

func TestDrawOffsetAndClip(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(Green)

	rec := cellRecorder{}
	c.Draw(rec, uv.Rect(5, 2, 2, 1))

	if len(rec) != 2 {
		t.Fatalf("Draw wrote %d cells, want 2", len(rec))
	}
	for _, pos := range [][2]int{{5, 2}, {6, 2}} {
		if _, ok := rec[pos]; !ok {
			t.Errorf("missing cell at %v", pos)
		}
	}
}

func TestFitTerminalSizeCentered(t *testing.T) {
	const termW, termH = 80, 24

	fitted := NewCanvas(900, 550).Fit(termW, termH*2)
	cols, rows := fitted.TerminalSize()
	if cols != 78 || rows != 24 {
		t.Fatalf("TerminalSize() = (%d, %d), want (78, 24)", cols, rows)
	}

	rec := cellRecorder{}
	fitted.Draw(rec, uv.Rect((termW-cols)/2, (termH-rows)/2, cols, rows))
	if len(rec) != cols*rows {
		t.Fatalf("Draw wrote %d cells, want %d", len(rec), cols*rows)
	}
	if _, ok := rec[[2]int{0, 0}]; ok {
		t.Error("column 0 should be left as margin")
	}
	if _, ok := rec[[2]int{1, 0}]; !ok {
		t.Error("first canvas column should start at x=1")
	}
	if _, ok := rec[[2]int{termW - 1, 0}]; ok {
		t.Error("last column should be left as margin")
	}
}
