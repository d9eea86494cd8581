package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/labterial/labterial/internal/diagram"
	"github.com/labterial/labterial/internal/mechsim"
	"github.com/labterial/labterial/internal/report"
	"github.com/labterial/labterial/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Simulation inputs
	simMaterials []string
	simMode      string
	simLimit     float64
	simPoints    int
	simUnits     string

	// Outputs
	simASCII   bool
	simPlotOut string
	simCSVOut  string

	// Specimen geometry (mm), for derived force/torque columns
	simLength   float64
	simDiameter float64
	simWidth    float64
	simDepth    float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a virtual mechanical test on stored materials",
	Long: `Simulate a destructive mechanical test for one or more materials from
the inventory and print the resulting curve summary.

The machine limit is the maximum strain (mm/mm) the virtual machine can
drive, or the maximum twist angle (rad) for torsion. With specimen
geometry the output includes machine-frame quantities: force and
displacement for tension/compression, torque and angle for torsion,
force and deflection for flexion.

Examples:
  # Tensile test on A36 steel up to 35% strain
  labterial simulate -m "Steel A36" --mode tension --limit 0.35

  # Compare two metals, render an ASCII chart
  labterial simulate -m "Steel A36" -m "Aluminum 6061" --mode tension --ascii

  # Torsion with specimen geometry, torque-angle CSV export
  labterial simulate -m "Steel A36" --mode torsion --limit 2.0 \
      --length 100 --diameter 10 --csv torsion.csv

  # Three-point bending, PNG plot in Imperial units
  labterial simulate -m "Steel A36" --mode flexion --limit 0.05 \
      --span 200 --width 20 --depth 10 --units imperial --plot flexion.png`,
	Run: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringArrayVarP(&simMaterials, "material", "m", nil, "Material name from the inventory (repeatable) [required]")
	simulateCmd.Flags().StringVar(&simMode, "mode", "tension", "Test mode: tension, compression, torsion, flexion")
	simulateCmd.Flags().Float64Var(&simLimit, "limit", 0.15, "Machine limit: max strain (mm/mm) or angle (rad)")
	simulateCmd.Flags().IntVar(&simPoints, "points", 0, "Curve resolution (default from config)")
	simulateCmd.Flags().StringVar(&simUnits, "units", "", "Display units: si or imperial (default from config)")

	simulateCmd.Flags().BoolVar(&simASCII, "ascii", false, "Render the curve as an ASCII chart")
	simulateCmd.Flags().StringVar(&simPlotOut, "plot", "", "Export the curve plot to an image file (.png/.svg/.pdf)")
	simulateCmd.Flags().StringVar(&simCSVOut, "csv", "", "Export the curve data to a CSV file")

	simulateCmd.Flags().Float64Var(&simLength, "length", 0, "Specimen gauge length (mm), tension/compression/torsion")
	simulateCmd.Flags().Float64Var(&simLength, "span", 0, "Support span (mm), flexion")
	simulateCmd.Flags().Float64Var(&simDiameter, "diameter", 0, "Specimen diameter (mm), round sections")
	simulateCmd.Flags().Float64Var(&simWidth, "width", 0, "Specimen width b (mm), flexion")
	simulateCmd.Flags().Float64Var(&simDepth, "depth", 0, "Specimen depth d (mm), flexion")

	simulateCmd.MarkFlagRequired("material")
}

func runSimulate(cmd *cobra.Command, args []string) {
	st, cfg, err := openStore()
	if err != nil {
		fail(err)
	}
	defer st.Close()

	mode, err := mechsim.ParseTestMode(simMode)
	if err != nil {
		fail(err)
	}
	sys, err := resolveUnits(simUnits, cfg)
	if err != nil {
		fail(err)
	}
	points := simPoints
	if points == 0 {
		points = cfg.PointCount
	}

	ctx := context.Background()
	var curves []diagram.CurveData

	for _, name := range simMaterials {
		mat, err := st.Get(ctx, name)
		if err != nil {
			fail(err)
		}
		props := mat.Properties()

		curve, err := mechsim.Simulate(mechsim.Request{
			Material:     props,
			Mode:         mode,
			MachineLimit: simLimit,
			PointCount:   points,
		})
		if err != nil {
			fail(fmt.Errorf("simulating %q: %w", name, err))
		}
		curves = append(curves, diagram.CurveData{Name: name, Mode: mode, Curve: curve})

		printSummary(props, mode, curve, sys)
		if err := printDerived(mode, curve, sys); err != nil {
			fail(err)
		}
	}

	if simASCII {
		for _, d := range curves {
			fmt.Println(diagram.DrawASCIICurve(d, sys, 70, 14))
		}
	}
	if simPlotOut != "" {
		title := fmt.Sprintf("%s Test Curves", mode)
		if err := diagram.ExportCurvePlot(curves, sys, title, simPlotOut); err != nil {
			fail(err)
		}
		fmt.Printf("Plot written to %s\n", simPlotOut)
	}
	if simCSVOut != "" {
		if err := exportCurveCSV(curves, mode, sys); err != nil {
			fail(err)
		}
		fmt.Printf("Curve data written to %s\n", simCSVOut)
	}
}

func printSummary(props mechsim.MaterialProperties, mode mechsim.TestMode, curve mechsim.Curve, sys units.System) {
	duct, err := mechsim.EstimateDuctility(props, mode)
	if err != nil {
		fail(err)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     VIRTUAL %s TEST - %s\n", strings.ToUpper(mode.String()), props.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Category:\t%s\n", props.Category)
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.0f %s\n", sys.Stress(props.ElasticModulus), sys.StressLabel())
	fmt.Fprintf(w, "  Yield Strength (Sy):\t%.1f %s\n", sys.Stress(props.YieldStrength), sys.StressLabel())
	if props.UltimateStrength > 0 {
		fmt.Fprintf(w, "  Ultimate Strength (Su):\t%.1f %s\n", sys.Stress(props.UltimateStrength), sys.StressLabel())
	}
	fmt.Fprintf(w, "  Samples:\t%d\n", len(curve))

	if maxStress, ok := curve.MaxStress(); ok {
		fmt.Fprintf(w, "  Peak stress in window:\t%.1f %s\n", sys.Stress(maxStress), sys.StressLabel())
	}
	if mode == mechsim.Compression {
		fmt.Fprintf(w, "  Fracture:\tnone (compression does not neck)\n")
	} else {
		brittleness := "ductile"
		if duct.Brittle {
			brittleness = "brittle"
		}
		fmt.Fprintf(w, "  Behavior:\t%s\n", brittleness)
		if r, ok := curve.RuptureStrain(); ok {
			fmt.Fprintf(w, "  Fracture at:\t%.4g\n", r)
		} else {
			fmt.Fprintf(w, "  Fracture at:\t%.4g (beyond machine limit)\n", duct.RuptureStrain)
		}
	}
	w.Flush()
	fmt.Println()
}

// printDerived adds the machine-frame quantities when the relevant
// geometry flags were given.
func printDerived(mode mechsim.TestMode, curve mechsim.Curve, sys units.System) error {
	pts, xLabel, yLabel, err := deriveForMode(curve, mode, sys)
	if err != nil || pts == nil {
		return err
	}

	var peak float64
	for _, p := range pts {
		if p.Ruptured {
			continue
		}
		if math.Abs(p.Y) > math.Abs(peak) {
			peak = p.Y
		}
	}
	lines := []string{
		fmt.Sprintf("Peak %s: %.2f", yLabel, peak),
		fmt.Sprintf("Final %s: %.4g", xLabel, pts[len(pts)-1].X),
	}
	fmt.Println(diagram.DrawSummaryBox("MACHINE FRAME", lines))
	return nil
}

// deriveForMode converts the stress-strain curve using the geometry
// flags. A nil point slice means no geometry was supplied.
func deriveForMode(curve mechsim.Curve, mode mechsim.TestMode, sys units.System) ([]mechsim.DerivedPoint, string, string, error) {
	switch mode {
	case mechsim.Torsion:
		if simLength <= 0 || simDiameter <= 0 {
			return nil, "", "", nil
		}
		g := mechsim.TorsionGeometry{Length: simLength, Diameter: simDiameter}
		pts, err := mechsim.DeriveTorque(curve, g)
		return pts, "angle (rad)", "torque (N·m)", err
	case mechsim.Flexion:
		if simLength <= 0 || simWidth <= 0 || simDepth <= 0 {
			return nil, "", "", nil
		}
		g := mechsim.FlexionGeometry{Length: simLength, Width: simWidth, Depth: simDepth}
		pts, err := mechsim.DeriveFlexion(curve, g)
		if err != nil {
			return nil, "", "", err
		}
		for i := range pts {
			pts[i].X = sys.Length(pts[i].X)
			pts[i].Y = sys.Force(pts[i].Y)
		}
		return pts, "deflection (" + sys.LengthLabel() + ")", "force (" + sys.ForceLabel() + ")", nil
	case mechsim.Tension, mechsim.Compression:
		if simLength <= 0 || simDiameter <= 0 {
			return nil, "", "", nil
		}
		g := mechsim.AxialGeometry{Length: simLength, Diameter: simDiameter}
		pts, err := mechsim.DeriveAxial(curve, mode, g)
		if err != nil {
			return nil, "", "", err
		}
		for i := range pts {
			pts[i].X = sys.Length(pts[i].X)
			pts[i].Y = sys.Force(pts[i].Y)
		}
		return pts, "displacement (" + sys.LengthLabel() + ")", "force (" + sys.ForceLabel() + ")", nil
	}
	return nil, "", "", nil
}

func exportCurveCSV(curves []diagram.CurveData, mode mechsim.TestMode, sys units.System) error {
	f, err := os.Create(simCSVOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", simCSVOut, err)
	}
	defer f.Close()

	for _, d := range curves {
		if len(curves) > 1 {
			fmt.Fprintf(f, "# %s\n", d.Name)
		}
		pts, xLabel, yLabel, err := deriveForMode(d.Curve, mode, sys)
		if err != nil {
			return err
		}
		if pts != nil {
			if err := report.WriteDerivedCSV(f, pts, xLabel, yLabel); err != nil {
				return err
			}
			continue
		}
		if err := report.WriteCurveCSV(f, d.Curve, mode, sys); err != nil {
			return err
		}
	}
	return nil
}
