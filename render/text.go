package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// drawText writes s at x,y clipped to maxWidth cells and returns the cells used
func drawText(buf *RenderBuffer, x, y int, s string, fg, bg colorful.Color, maxWidth int) int {
	if maxWidth <= 0 {
		return 0
	}
	s = runewidth.Truncate(s, maxWidth, "")
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.SetWithBg(col, y, r, fg, bg)
		// Wide runes own the next cell
		for i := 1; i < w; i++ {
			buf.SetWithBg(col+i, y, 0, fg, bg)
		}
		col += w
	}
	return col - x
}

// centerText writes s centred within [x, x+width)
func centerText(buf *RenderBuffer, x, y, width int, s string, fg, bg colorful.Color) {
	w := runewidth.StringWidth(s)
	if w > width {
		w = width
	}
	drawText(buf, x+(width-w)/2, y, s, fg, bg, width)
}

// textWidth returns the display width of s in cells
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
