package mechsim

import "math"

// Shape constants for the plastic portions of the synthesized curves.
const (
	// Ductile hardening: power-law exponent between yield and peak.
	hardeningExponent = 0.5

	// Peak stress sits at this fraction of the plastic span.
	peakPositionFraction = 0.72

	// Engineering stress at fracture, as a fraction of the peak, after
	// necking localizes the deformation.
	neckingDropFactor = 0.85

	// Polymer cold drawing: the yield peak drops to this fraction of
	// Sy, the drop spans [εy, 2εy] but never more than half the
	// plastic span, the plateau runs to 75% of the rupture strain, and
	// the final chain-alignment hardening rises with exponent 1.5.
	polymerDrawStressFactor  = 0.8
	polymerDropEndFactor     = 2.0
	polymerDropSpanFraction  = 0.5
	polymerPlateauEnd        = 0.75
	polymerHardeningExponent = 1.5

	// A polymer needs at least half a yield strain of plastic reserve
	// to form a stable neck; below rupture = 1.5·εy it snaps like a
	// brittle solid instead of cold drawing.
	polymerNeckingMinSpan = 1.5

	// Compression hardening calibration: K = (Su-Sy)/0.2^0.5 so the
	// stress passes Su around 20% strain and keeps climbing.
	compressionRefStrain = 0.2

	// The terminal rupture marker sits just past the rupture strain so
	// plots show a visible break.
	ruptureMarkerFactor = 1.001
)

// Sample is one point of a simulated curve. When Ruptured is set the
// specimen has fractured at this strain and Stress is meaningless
// (held at zero); it is an explicit marker, not a measurement.
type Sample struct {
	Strain   float64
	Stress   float64
	Ruptured bool
}

// Curve is an ordered, strictly non-decreasing-in-strain sequence of
// samples starting at (0, 0). Curves are value sequences; nothing in
// this package mutates one after returning it.
type Curve []Sample

// MaxStress returns the largest finite stress magnitude-signed value on
// the curve, and false if every sample is ruptured or the curve is
// empty. For compression curves (negative stress) it returns the most
// negative value's counterpart, i.e. the extreme of |stress| with its
// sign preserved.
func (c Curve) MaxStress() (float64, bool) {
	found := false
	var best float64
	for _, s := range c {
		if s.Ruptured {
			continue
		}
		if !found || math.Abs(s.Stress) > math.Abs(best) {
			best = s.Stress
			found = true
		}
	}
	return best, found
}

// Ruptured reports whether the curve contains a fracture marker.
func (c Curve) Ruptured() bool {
	for _, s := range c {
		if s.Ruptured {
			return true
		}
	}
	return false
}

// RuptureStrain returns the strain of the first ruptured sample.
func (c Curve) RuptureStrain() (float64, bool) {
	for _, s := range c {
		if s.Ruptured {
			return s.Strain, true
		}
	}
	return 0, false
}

// StrainPercent returns the convenience strain column: percent strain
// for linear modes, the raw angular strain for torsion.
func (c Curve) StrainPercent(mode TestMode) []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		if mode == Torsion {
			out[i] = s.Strain
		} else {
			out[i] = s.Strain * 100
		}
	}
	return out
}

// segment is one piece of a piecewise stress law: on [e0, e1] the
// stress runs from s0 to s1 as s0 + (s1-s0)*t^exp with t the
// normalized position. exp = 1 gives straight interpolation.
type segment struct {
	e0, e1 float64
	s0, s1 float64
	exp    float64
}

func (sg segment) at(e float64) float64 {
	span := sg.e1 - sg.e0
	if span <= 0 {
		// Zero-span segments degenerate to their endpoint.
		return sg.s1
	}
	t := (e - sg.e0) / span
	return sg.s0 + (sg.s1-sg.s0)*math.Pow(t, sg.exp)
}

// profile is a fully-built piecewise curve law for one simulation:
// an exact elastic region followed by plastic segments, ending at the
// rupture strain (infinite for compression).
type profile struct {
	modulus     float64
	elasticEnd  float64 // εy, or the rupture strain if it comes first
	segments    []segment
	rupture     float64 // +Inf when the mode never fractures
}

// stressAt evaluates the profile. The second return is false past the
// rupture strain, where stress is undefined.
func (p profile) stressAt(e float64) (float64, bool) {
	if e > p.rupture {
		return 0, false
	}
	if e <= p.elasticEnd {
		// Hooke's law holds exactly everywhere below yield.
		return p.modulus * e, true
	}
	for _, sg := range p.segments {
		if e <= sg.e1 {
			return sg.at(e), true
		}
	}
	// Past the last keypoint (compression beyond the pre-built span):
	// extend linearly from the last two keypoints.
	if n := len(p.segments); n > 0 {
		last := p.segments[n-1]
		span := last.e1 - last.e0
		if span > 0 {
			slope := (last.s1 - last.s0) / span
			return last.s1 + slope*(e-last.e1), true
		}
		return last.s1, true
	}
	return p.modulus * p.elasticEnd, true
}

// buildProfile constructs the piecewise law for one material, mode and
// ductility estimate. q must come from TransformForMode; d from
// EstimateDuctility. machineLimit only matters for compression, where
// the hardening law is pre-built slightly past the display window so
// the curve never flattens artificially at the boundary.
func buildProfile(cat Category, mode TestMode, q ModeQuantities, d Ductility, machineLimit float64) profile {
	ey := q.YieldStrain()

	if mode == Compression {
		return compressionProfile(q, machineLimit)
	}

	rupture := d.RuptureStrain

	// Collapse to the brittle single-segment law when there is no
	// plastic reserve at all.
	if rupture <= ey {
		return profile{modulus: q.Modulus, elasticEnd: rupture, rupture: rupture}
	}

	if d.Brittle || cat == Ceramic || (mode == Tension && cat == Composite) {
		return brittleProfile(q, ey, rupture)
	}

	if cat == Polymer && mode == Tension {
		if rupture <= ey*polymerNeckingMinSpan {
			return brittleProfile(q, ey, rupture)
		}
		return polymerProfile(q, ey, rupture)
	}

	return ductileProfile(q, ey, rupture)
}

// brittleProfile: elastic region, then one straight run from the yield
// keypoint to (rupture, Ultimate). No necking, no softening.
func brittleProfile(q ModeQuantities, ey, rupture float64) profile {
	return profile{
		modulus:    q.Modulus,
		elasticEnd: ey,
		rupture:    rupture,
		segments: []segment{
			{e0: ey, e1: rupture, s0: q.Yield, s1: q.Ultimate, exp: 1},
		},
	}
}

// ductileProfile: power-law hardening from yield to the peak at Su,
// then straight softening down to 0.85·Su at rupture. Used for ductile
// metals, flexion, and ductile torsion (on shear quantities).
func ductileProfile(q ModeQuantities, ey, rupture float64) profile {
	peak := ey + peakPositionFraction*(rupture-ey)
	return profile{
		modulus:    q.Modulus,
		elasticEnd: ey,
		rupture:    rupture,
		segments: []segment{
			{e0: ey, e1: peak, s0: q.Yield, s1: q.Ultimate, exp: hardeningExponent},
			{e0: peak, e1: rupture, s0: q.Ultimate, s1: q.Ultimate * neckingDropFactor, exp: 1},
		},
	}
}

// polymerProfile: the four-phase cold-drawing shape of semicrystalline
// polymers under tension. Yield peak, drop, constant-stress plateau
// while the neck propagates, then chain-alignment hardening to Su.
func polymerProfile(q ModeQuantities, ey, rupture float64) profile {
	draw := q.Yield * polymerDrawStressFactor
	dropEnd := math.Min(ey*polymerDropEndFactor, ey+(rupture-ey)*polymerDropSpanFraction)
	plateauEnd := math.Max(dropEnd, rupture*polymerPlateauEnd)
	return profile{
		modulus:    q.Modulus,
		elasticEnd: ey,
		rupture:    rupture,
		segments: []segment{
			{e0: ey, e1: dropEnd, s0: q.Yield, s1: draw, exp: hardeningExponent},
			{e0: dropEnd, e1: plateauEnd, s0: draw, s1: draw, exp: 1},
			{e0: plateauEnd, e1: rupture, s0: draw, s1: q.Ultimate, exp: polymerHardeningExponent},
		},
	}
}

// compressionProfile: continuous hardening with no fracture. The power
// law Sy + K·(ε-εy)^0.5 is materialized out to 1.2× the machine limit;
// anything beyond that extrapolates linearly.
func compressionProfile(q ModeQuantities, machineLimit float64) profile {
	ey := q.YieldStrain()
	k := (q.Ultimate - q.Yield) / math.Sqrt(compressionRefStrain)
	end := math.Max(machineLimit*1.2, ey*2)
	return profile{
		modulus:    q.Modulus,
		elasticEnd: ey,
		rupture:    math.Inf(1),
		segments: []segment{
			{e0: ey, e1: end, s0: q.Yield, s1: q.Yield + k*math.Sqrt(end-ey), exp: hardeningExponent},
		},
	}
}

// generate densifies a profile into pointCount evenly spaced samples
// over [0, machineLimit], marking every sample past rupture, and
// appends a terminal rupture marker when the fracture lies just beyond
// the sampled window.
func generate(p profile, machineLimit float64, pointCount int) Curve {
	step := machineLimit / float64(pointCount-1)
	curve := make(Curve, 0, pointCount+1)
	for i := 0; i < pointCount; i++ {
		e := float64(i) * step
		if i == pointCount-1 {
			e = machineLimit // avoid accumulating rounding past the limit
		}
		s, ok := p.stressAt(e)
		curve = append(curve, Sample{Strain: e, Stress: s, Ruptured: !ok})
	}
	if !math.IsInf(p.rupture, 1) && p.rupture > machineLimit {
		// Fracture beyond the grid: record it as an explicit marker so
		// consumers can still see the break. Markers far outside the
		// window are dropped again by the clipper.
		curve = append(curve, Sample{Strain: p.rupture * ruptureMarkerFactor, Ruptured: true})
	}
	return curve
}
