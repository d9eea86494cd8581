package mechsim

import "math"

// Ductility heuristic constants. These are phenomenological, tuned for
// plausible-looking curves rather than derived from any single physical
// model; changing them changes every simulated rupture point.
const (
	// Metal: rupture strain grows with the hardening ratio Su/Sy - 1.
	metalRuptureBase  = 0.02
	metalRuptureGain  = 0.5
	metalRuptureFloor = 0.01
	metalRuptureCeil  = 0.60

	// Polymer: staged by stiffness. Below rubberModulus the material is
	// elastomeric, above rigidModulus it is a rigid thermoset.
	rubberModulus        = 500.0
	rigidModulus         = 2500.0
	rubberRupture        = 1.8
	semiCrystallineGain  = 1600.0
	semiCrystallineFloor = 0.5
	semiCrystallineCeil  = 0.8
	rigidRuptureBase     = 0.05
	rigidRuptureGain     = 250.0
	rigidRuptureCeil     = 0.10

	// Ceramic ruptures almost immediately past the elastic limit.
	ceramicRuptureOffset = 0.0005

	// Composite: fiber fracture slightly past Su/E.
	compositeRuptureGain = 1.2

	// Angular deformation tolerance exceeds linear strain tolerance.
	torsionRuptureFactor = 1.4

	// BrittleThreshold is the rupture strain below which the material is
	// treated as brittle: straight to fracture, no necking.
	BrittleThreshold = 0.02
)

// Ductility is the estimated failure behavior of a material under a
// given test mode.
type Ductility struct {
	// RuptureStrain is the intrinsic strain (or angular strain, for
	// torsion) at which the specimen fractures. It is +Inf under
	// compression, where the model never fractures and the machine
	// limit alone bounds the test.
	RuptureStrain float64

	// Brittle marks materials that fracture with no plastic reserve.
	Brittle bool
}

// EstimateDuctility guesses the rupture strain for a material under a
// test mode from its coarse properties. The estimate is intrinsic to
// the material and mode; it does not depend on the machine limit.
func EstimateDuctility(p MaterialProperties, mode TestMode) (Ductility, error) {
	if err := p.Validate(); err != nil {
		return Ductility{}, err
	}
	p = p.normalized()

	e := p.ElasticModulus
	sy := p.YieldStrength
	su := p.UltimateStrength

	var rupture float64
	switch p.Category {
	case Metal:
		ratio := su/sy - 1
		rupture = clamp(metalRuptureBase+ratio*metalRuptureGain, metalRuptureFloor, metalRuptureCeil)
	case Polymer:
		switch {
		case e < rubberModulus:
			rupture = rubberRupture
		case e < rigidModulus:
			rupture = clamp(semiCrystallineGain/e, semiCrystallineFloor, semiCrystallineCeil)
		default:
			rupture = clamp(rigidRuptureBase+rigidRuptureGain/e, rigidRuptureBase, rigidRuptureCeil)
		}
	case Ceramic:
		rupture = sy/e + ceramicRuptureOffset
	case Composite:
		rupture = su / e * compositeRuptureGain
	default:
		ratio := su/sy - 1
		rupture = clamp(metalRuptureBase+ratio*metalRuptureGain, metalRuptureFloor, metalRuptureCeil)
	}

	switch mode {
	case Torsion:
		rupture *= torsionRuptureFactor
	case Compression:
		// Necking never develops; cross-section growth keeps the
		// specimen intact for as long as the machine can push.
		return Ductility{RuptureStrain: math.Inf(1)}, nil
	}

	return Ductility{
		RuptureStrain: rupture,
		Brittle:       rupture < BrittleThreshold,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
