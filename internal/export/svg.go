package export

import (
	"fmt"
	"strings"
)

// BrailleGrid is a grid of Braille pattern runes.
type BrailleGrid interface {
	Size() (cols, rows int)
	Cell(col, row int) rune
}

// Braille dot-to-bit mapping, row-major over the 2x4 dot cell.
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// BrailleToSVG converts a Braille grid to SVG, one circle per set dot.
func BrailleToSVG(grid BrailleGrid, scale float64, fg, bg string) string {
	if grid == nil {
		return ""
	}
	cols, rows := grid.Size()

	width := float64(cols) * scale * 2
	height := float64(rows) * scale * 4

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, bg, fg))

	dotRadius := scale * 0.4

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := grid.Cell(col, row)
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
