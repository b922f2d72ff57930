// Package viz renders sampled curves in the terminal: static
// per-component plots and an interactive explorer.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// Plot renders one asciigraph per value component.
func Plot(title string, args []float64, values [][]float64) string {
	if len(values) == 0 {
		return dim.Render("no samples")
	}
	dims := len(values[0])

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for d := 0; d < dims; d++ {
		data := make([]float64, len(values))
		for i, row := range values {
			data[i] = row[d]
		}
		caption := fmt.Sprintf("y%d over t ∈ [%.3g, %.3g]", d, args[0], args[len(args)-1])
		graph := asciigraph.Plot(data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	return b.String()
}

func plotLine(data []float64, width, height int) string {
	if height < 5 {
		height = 5
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
	)
}

// PlotPhase renders component ya against component yb as a planar
// scatter, for closed 2D curves.
func PlotPhase(title string, values [][]float64, ya, yb int) string {
	if len(values) == 0 || ya >= len(values[0]) || yb >= len(values[0]) {
		return dim.Render("no samples")
	}

	const w, h = 60, 24
	minX, maxX := values[0][ya], values[0][ya]
	minY, maxY := values[0][yb], values[0][yb]
	for _, row := range values {
		minX, maxX = min(minX, row[ya]), max(maxX, row[ya])
		minY, maxY = min(minY, row[yb]), max(maxY, row[yb])
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	canvas := make([][]rune, h)
	for i := range canvas {
		canvas[i] = make([]rune, w)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	for _, row := range values {
		x := int((row[ya] - minX) / (maxX - minX) * float64(w-1))
		y := int((row[yb] - minY) / (maxY - minY) * float64(h-1))
		canvas[h-1-y][x] = '·'
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, line := range canvas {
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(fmt.Sprintf("y%d: [%.3g, %.3g]  y%d: [%.3g, %.3g]", ya, minX, maxX, yb, minY, maxY)))
	b.WriteString("\n")
	return b.String()
}
