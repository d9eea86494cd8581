// Package diagram renders simulated test curves for the terminal and
// for image export.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/labterial/labterial/internal/mechsim"
	"github.com/labterial/labterial/internal/units"
)

// CurveData pairs one simulated curve with its presentation metadata.
type CurveData struct {
	Name  string
	Mode  mechsim.TestMode
	Curve mechsim.Curve
}

// AxisLabels returns the x/y axis captions for a mode and unit system.
func AxisLabels(mode mechsim.TestMode, sys units.System) (x, y string) {
	if mode == mechsim.Torsion {
		return "Angular strain (rad)", "Shear stress (" + sys.StressLabel() + ")"
	}
	return "Strain (%)", "Stress (" + sys.StressLabel() + ")"
}

// DrawASCIICurve renders one curve as a terminal line chart. The series
// stops at the rupture point; a broken specimen has nothing to plot
// past the fracture.
func DrawASCIICurve(d CurveData, sys units.System, width, height int) string {
	series := make([]float64, 0, len(d.Curve))
	for _, s := range d.Curve {
		if s.Ruptured {
			break
		}
		series = append(series, sys.Stress(s.Stress))
	}
	if len(series) < 2 {
		return "  (curve too short to plot)\n"
	}

	_, yLabel := AxisLabels(d.Mode, sys)
	last := d.Curve[len(d.Curve)-1]
	caption := fmt.Sprintf("%s (%s)  [y: %s, x: 0 to %.4g %s]",
		d.Name, d.Mode, yLabel, last.Strain, xUnit(d.Mode))

	graph := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	if r, ok := d.Curve.RuptureStrain(); ok {
		sb.WriteString(fmt.Sprintf("\n  ✂ specimen fractures at %.4g %s\n", r, xUnit(d.Mode)))
	}
	return sb.String()
}

func xUnit(mode mechsim.TestMode) string {
	if mode == mechsim.Torsion {
		return "rad"
	}
	return "mm/mm"
}

// DrawSummaryBox frames a titled result summary, one line per entry.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
