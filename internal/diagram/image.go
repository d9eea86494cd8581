package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/labterial/labterial/internal/units"
)

// Line palette cycled across materials on a comparison plot.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// ExportCurvePlot writes the simulated curves to an image file, one
// line per material. The format follows the extension (.png, .svg,
// .pdf); anything else gets ".png" appended.
func ExportCurvePlot(curves []CurveData, sys units.System, title, filename string) error {
	if len(curves) == 0 {
		return fmt.Errorf("diagram: no curves to plot")
	}

	p := plot.New()
	p.Title.Text = title
	x, y := AxisLabels(curves[0].Mode, sys)
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Legend.Top = true
	p.Legend.Left = true

	for i, d := range curves {
		xys := make(plotter.XYs, 0, len(d.Curve))
		percent := d.Curve.StrainPercent(d.Mode)
		for j, s := range d.Curve {
			if s.Ruptured {
				break
			}
			xys = append(xys, plotter.XY{X: percent[j], Y: sys.Stress(s.Stress)})
		}
		if len(xys) < 2 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting %q: %w", d.Name, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(d.Name, line)
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
