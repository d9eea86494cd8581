package mechsim

// Mode-specific stress conversion factors.
const (
	// Von Mises: shear yield is 1/√3 of the uniaxial yield.
	shearYieldFactor = 0.577

	// Empirical shear-ultimate fraction of the uniaxial ultimate.
	shearUltimateFactor = 0.6

	// Modulus-of-rupture corrections for three-point bending: only the
	// outer fibers see peak stress, so the apparent strengths exceed
	// the uniaxial values.
	flexureYieldFactor    = 1.1
	flexureUltimateFactor = 1.2
)

// ModeQuantities are the modulus and strength values that actually
// drive curve construction for a given test mode. For torsion they are
// shear quantities (G, τy, τu); for flexion, outer-fiber corrected
// strengths; for tension and compression, the uniaxial values as-is.
type ModeQuantities struct {
	Modulus  float64
	Yield    float64
	Ultimate float64
}

// YieldStrain returns the strain at the elastic limit, Yield/Modulus.
func (q ModeQuantities) YieldStrain() float64 {
	return q.Yield / q.Modulus
}

// TransformForMode converts uniaxial material properties into the
// quantities governing the requested test mode. The input must already
// be normalized; Su > Sy is assumed.
func TransformForMode(p MaterialProperties, mode TestMode) ModeQuantities {
	switch mode {
	case Torsion:
		return ModeQuantities{
			Modulus:  p.ElasticModulus / (2 * (1 + p.PoissonRatio)),
			Yield:    p.YieldStrength * shearYieldFactor,
			Ultimate: p.UltimateStrength * shearUltimateFactor,
		}
	case Flexion:
		return ModeQuantities{
			Modulus:  p.ElasticModulus,
			Yield:    p.YieldStrength * flexureYieldFactor,
			Ultimate: p.UltimateStrength * flexureUltimateFactor,
		}
	default: // Tension, Compression
		return ModeQuantities{
			Modulus:  p.ElasticModulus,
			Yield:    p.YieldStrength,
			Ultimate: p.UltimateStrength,
		}
	}
}
