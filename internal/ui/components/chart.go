package components

import (
	"fmt"
	"math"
	"strings"
)

const chartMax = 10.0

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Chart draws CGPA values as vertical bars on a 0-10 axis, oldest first. Each row is one
// step of 10/height; a bar gets a half block when the value reaches half a step.
func Chart(values []float64, height int) string {
	if len(values) == 0 {
		return "no saved results"
	}
	if height < 2 {
		height = 10
	}
	step := chartMax / float64(height)
	lines := make([]string, 0, height+2)
	for level := height; level >= 1; level-- {
		top := float64(level) * step
		b := strings.Builder{}
		fmt.Fprintf(&b, "%5.1f │", top)
		for _, v := range values {
			switch {
			case v >= top-1e-9:
				b.WriteString(" ██")
			case v >= top-step/2-1e-9:
				b.WriteString(" ▄▄")
			default:
				b.WriteString("   ")
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	lines = append(lines, "      └"+strings.Repeat("───", len(values)))
	labels := strings.Builder{}
	labels.WriteString("       ")
	for i := range values {
		fmt.Fprintf(&labels, "%3d", i+1)
	}
	lines = append(lines, labels.String())
	return strings.Join(lines, "\n")
}

// Sparkline compresses values into one line of block glyphs on the 0-10 scale.
func Sparkline(values []float64) string {
	out := make([]rune, 0, len(values))
	top := len(sparkRunes) - 1
	for _, v := range values {
		idx := int(math.Round(math.Max(0, math.Min(v, chartMax)) / chartMax * float64(top)))
		out = append(out, sparkRunes[idx])
	}
	return string(out)
}

// Trend describes the change between the last two values.
func Trend(values []float64) string {
	if len(values) < 2 {
		return "–"
	}
	delta := values[len(values)-1] - values[len(values)-2]
	switch {
	case delta > 0.0049:
		return fmt.Sprintf("↑ +%.2f", delta)
	case delta < -0.0049:
		return fmt.Sprintf("↓ %.2f", delta)
	default:
		return "→ 0.00"
	}
}
