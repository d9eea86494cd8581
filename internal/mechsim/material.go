// Package mechsim simulates destructive mechanical tests (tension,
// compression, torsion, flexion) from coarse material properties,
// producing discretized stress-strain curves that mimic a laboratory
// testing machine.
package mechsim

import (
	"fmt"
	"strings"
)

// Category classifies a material family. The family decides which
// ductility heuristic and curve branch apply.
type Category int

const (
	Metal Category = iota
	Polymer
	Ceramic
	Composite
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Metal:
		return "Metal"
	case Polymer:
		return "Polymer"
	case Ceramic:
		return "Ceramic"
	case Composite:
		return "Composite"
	}
	return "Metal"
}

// ParseCategory maps a category name to its enum value. Unknown names
// default to Metal; material databases in the wild are messy and a bad
// category should not abort a simulation.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metal":
		return Metal
	case "polymer", "plastic":
		return Polymer
	case "ceramic", "glass":
		return Ceramic
	case "composite":
		return Composite
	}
	return Metal
}

// TestMode identifies the loading mode of the simulated test.
type TestMode int

const (
	Tension TestMode = iota
	Compression
	Torsion
	Flexion
)

// String returns the mode name.
func (m TestMode) String() string {
	switch m {
	case Tension:
		return "Tension"
	case Compression:
		return "Compression"
	case Torsion:
		return "Torsion"
	case Flexion:
		return "Flexion"
	}
	return "Tension"
}

// ParseTestMode maps a mode name to its enum value. Unlike categories,
// an unknown mode is a hard error: there is no sensible default test.
func ParseTestMode(s string) (TestMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tension", "tensile":
		return Tension, nil
	case "compression", "compressive":
		return Compression, nil
	case "torsion":
		return Torsion, nil
	case "flexion", "flexure", "bending":
		return Flexion, nil
	}
	return Tension, fmt.Errorf("%w: %q", ErrUnknownTestMode, s)
}

// Default values applied to incomplete material records.
const (
	// DefaultPoissonRatio replaces an absent or out-of-range ratio.
	// The zero value encodes "unset": a literal ν=0 is not
	// representable and is defaulted like a missing one.
	DefaultPoissonRatio = 0.3

	// defaultUltimateFactor sets Su when the record carries none or one
	// that does not exceed Sy. Hardening segments require Su > Sy.
	defaultUltimateFactor = 1.1
)

// MaterialProperties is an immutable description of one material's
// mechanical behavior. Stresses and moduli are in MPa.
//
// UltimateStrength and PoissonRatio are optional: a zero (or invalid)
// value is replaced by a documented default before simulation.
type MaterialProperties struct {
	Name             string
	Category         Category
	ElasticModulus   float64 // E, slope of the elastic region
	YieldStrength    float64 // Sy, onset of plastic deformation
	UltimateStrength float64 // Su, peak engineering stress; 0 = unknown
	PoissonRatio     float64 // ν in (0, 0.5]; 0 = unknown, defaulted to 0.3
}

// Validate reports whether the record can drive a simulation at all.
// Missing optional fields are not errors; they are defaulted.
func (p MaterialProperties) Validate() error {
	if p.ElasticModulus <= 0 {
		return fmt.Errorf("%w: E=%.4g", ErrNonPositiveModulus, p.ElasticModulus)
	}
	if p.YieldStrength <= 0 {
		return fmt.Errorf("%w: Sy=%.4g", ErrNonPositiveYield, p.YieldStrength)
	}
	return nil
}

// normalized returns a copy with optional fields resolved:
// Su missing or <= Sy becomes Sy*1.1, ν missing or outside [0, 0.5]
// becomes 0.3. Callers past this point may assume Su > Sy.
func (p MaterialProperties) normalized() MaterialProperties {
	if p.UltimateStrength <= p.YieldStrength {
		p.UltimateStrength = p.YieldStrength * defaultUltimateFactor
	}
	if p.PoissonRatio <= 0 || p.PoissonRatio > 0.5 {
		p.PoissonRatio = DefaultPoissonRatio
	}
	return p
}
