package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/rootplot/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func axisLine(name string, edges []float64) string {
	if len(edges) < 2 {
		return fmt.Sprintf("%s: (none)\n", name)
	}
	return fmt.Sprintf("%s: %d bins [%g, %g]\n", name, len(edges)-1, edges[0], edges[len(edges)-1])
}

func renderObjectSummary(obj domain.Object) string {
	var b strings.Builder

	b.WriteString("Class: ")
	b.WriteString(obj.Class)
	b.WriteString("\n")
	if obj.Title != "" {
		b.WriteString("Title: ")
		b.WriteString(domain.LatexToUnicode(obj.Title))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Dimension: %d\n\n", obj.Dim()))

	switch {
	case obj.H1 != nil:
		h := obj.H1
		b.WriteString(axisLine("x", h.Edges))
		b.WriteString(fmt.Sprintf("Integral: %g\nMax: %g\nMean: %.4g\nRMS: %.4g\n", h.Integral(), h.Max(), h.Mean(), h.RMS()))

	case obj.H2 != nil:
		b.WriteString(axisLine("x", obj.H2.XEdges))
		b.WriteString(axisLine("y", obj.H2.YEdges))
		if lo, hi, ok := obj.H2.Range(); ok {
			b.WriteString(fmt.Sprintf("Range: [%g, %g]\n", lo, hi))
		}

	case obj.Graph != nil:
		b.WriteString(fmt.Sprintf("Points: %d\nMax y: %g\n", obj.Graph.Len(), obj.Graph.Max()))

	case obj.Eff != nil && obj.Eff.Total != nil:
		b.WriteString(axisLine("x", obj.Eff.Total.Edges))
		b.WriteString(fmt.Sprintf("Passed: %g\nTotal: %g\n", obj.Eff.Passed.Integral(), obj.Eff.Total.Integral()))

	case obj.Eff != nil && obj.Eff.Total2D != nil:
		b.WriteString(axisLine("x", obj.Eff.Total2D.XEdges))
		b.WriteString(axisLine("y", obj.Eff.Total2D.YEdges))
	}

	return b.String()
}
