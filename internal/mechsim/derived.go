package mechsim

import (
	"fmt"
	"math"
)

// Specimen geometry for derived-quantity conversion. Dimensions in mm;
// geometry is always an explicit parameter so the engine itself stays
// free of specimen assumptions.

// AxialGeometry describes a solid round tension/compression specimen.
type AxialGeometry struct {
	Length   float64 // gauge length L
	Diameter float64
}

// Area returns the cross-sectional area in mm².
func (g AxialGeometry) Area() float64 {
	r := g.Diameter / 2
	return math.Pi * r * r
}

func (g AxialGeometry) validate() error {
	if g.Length <= 0 || g.Diameter <= 0 {
		return fmt.Errorf("%w: L=%.4g d=%.4g", ErrInvalidGeometry, g.Length, g.Diameter)
	}
	return nil
}

// TorsionGeometry describes a solid round torsion specimen.
type TorsionGeometry struct {
	Length   float64
	Diameter float64
}

// PolarMoment returns J = πr⁴/2 in mm⁴ for the solid circular section.
func (g TorsionGeometry) PolarMoment() float64 {
	r := g.Diameter / 2
	return math.Pi * math.Pow(r, 4) / 2
}

func (g TorsionGeometry) validate() error {
	if g.Length <= 0 || g.Diameter <= 0 {
		return fmt.Errorf("%w: L=%.4g d=%.4g", ErrInvalidGeometry, g.Length, g.Diameter)
	}
	return nil
}

// FlexionGeometry describes a rectangular three-point bending specimen.
type FlexionGeometry struct {
	Length float64 // support span L
	Width  float64 // b
	Depth  float64 // d, the critical dimension (enters as d²)
}

func (g FlexionGeometry) validate() error {
	if g.Length <= 0 || g.Width <= 0 || g.Depth <= 0 {
		return fmt.Errorf("%w: L=%.4g b=%.4g d=%.4g", ErrInvalidGeometry, g.Length, g.Width, g.Depth)
	}
	return nil
}

// DerivedPoint is one sample of a machine-frame curve: the quantity
// pair an actual testing machine would record (force/displacement,
// torque/angle, force/deflection). X and Y units depend on the
// conversion that produced it.
type DerivedPoint struct {
	X        float64
	Y        float64
	Ruptured bool
}

// DeriveAxial converts a tension or compression stress-strain curve to
// force (N) over displacement (mm) for a round specimen. Compression
// curves already carry negative stress, so force comes out negative;
// the displacement is negated to match (the crosshead moves down).
func DeriveAxial(c Curve, mode TestMode, g AxialGeometry) ([]DerivedPoint, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	area := g.Area()
	out := make([]DerivedPoint, len(c))
	for i, s := range c {
		disp := s.Strain * g.Length
		if mode == Compression {
			disp = -disp
		}
		out[i] = DerivedPoint{X: disp, Y: s.Stress * area, Ruptured: s.Ruptured}
	}
	return out, nil
}

// DeriveTorque converts a torsion shear curve to torque (N·m) over
// twist angle (rad): T = τJ/r, θ = γL/r.
func DeriveTorque(c Curve, g TorsionGeometry) ([]DerivedPoint, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	r := g.Diameter / 2
	j := g.PolarMoment()
	out := make([]DerivedPoint, len(c))
	for i, s := range c {
		out[i] = DerivedPoint{
			X:        s.Strain * g.Length / r,
			Y:        s.Stress * j / r / 1000, // N·mm to N·m
			Ruptured: s.Ruptured,
		}
	}
	return out, nil
}

// DeriveFlexion converts an outer-fiber bending curve to midspan force
// (N) over deflection (mm) for three-point bending:
// F = 2σbd²/(3L), δ = εL²/(6d).
func DeriveFlexion(c Curve, g FlexionGeometry) ([]DerivedPoint, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	out := make([]DerivedPoint, len(c))
	for i, s := range c {
		out[i] = DerivedPoint{
			X:        s.Strain * g.Length * g.Length / (6 * g.Depth),
			Y:        2 * s.Stress * g.Width * g.Depth * g.Depth / (3 * g.Length),
			Ruptured: s.Ruptured,
		}
	}
	return out, nil
}

// invertSign flips the stress sign of every sample. Compression is
// presented as negative stress, and this is the only place in the
// pipeline where the sign changes.
func invertSign(c Curve) Curve {
	out := make(Curve, len(c))
	for i, s := range c {
		s.Stress = -s.Stress
		out[i] = s
	}
	return out
}
