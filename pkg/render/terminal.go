package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// CellSetter is the part of uv.Screen that Draw writes to.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// Draw renders the canvas into a terminal area using upper half blocks
// (▀): each terminal row shows two canvas rows, the top one as foreground
// and the bottom one as background. The canvas origin maps to area.Min.
func (c *Canvas) Draw(scr CellSetter, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= c.height {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= c.width {
				break
			}

			var bg color.Color
			if botY < c.height {
				bg = c.pixels[botY*c.width+x].ToRGBA()
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: c.pixels[topY*c.width+x].ToRGBA(),
					Bg: bg,
				},
			})
		}
	}
}

// TerminalSize returns the terminal cell size needed to show the whole
// canvas with Draw.
func (c *Canvas) TerminalSize() (cols, rows int) {
	return c.width, (c.height + 1) / 2
}
