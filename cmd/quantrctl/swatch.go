package main

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/DarthSim/quantizr"
)

// swatchLine renders one palette entry as "#rrggbb" plus a colored terminal
// block, using go-colorful for the hex formatting. This is purely for
// console output; it never feeds back into quantization.
func swatchLine(c quantizr.Color) string {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m %s (a=%d)", c.R, c.G, c.B, col.Hex(), c.A)
}

// renderPalette renders every entry of pal, one per line.
func renderPalette(pal *quantizr.Palette) string {
	var b strings.Builder
	for i := 0; i < pal.Count; i++ {
		b.WriteString(swatchLine(pal.Entries[i]))
		b.WriteByte('\n')
	}
	return b.String()
}
