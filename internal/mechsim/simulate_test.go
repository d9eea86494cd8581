package mechsim

import (
	"errors"
	"math"
	"testing"
)

var mildSteel = MaterialProperties{
	Name:             "A36",
	Category:         Metal,
	ElasticModulus:   200000,
	YieldStrength:    250,
	UltimateStrength: 400,
	PoissonRatio:     0.3,
}

func mustSimulate(t *testing.T, req Request) Curve {
	t.Helper()
	c, err := Simulate(req)
	if err != nil {
		t.Fatalf("Simulate(%+v): %v", req, err)
	}
	if len(c) == 0 {
		t.Fatalf("Simulate returned an empty curve")
	}
	return c
}

func TestSimulateStartsAtOrigin(t *testing.T) {
	for _, mode := range []TestMode{Tension, Compression, Torsion, Flexion} {
		c := mustSimulate(t, Request{Material: mildSteel, Mode: mode, MachineLimit: 0.3})
		if c[0].Strain != 0 || c[0].Stress != 0 || c[0].Ruptured {
			t.Errorf("%v: first sample = %+v, want (0, 0)", mode, c[0])
		}
	}
}

func TestSimulateElasticLawHolds(t *testing.T) {
	for _, mode := range []TestMode{Tension, Compression, Torsion, Flexion} {
		props := mildSteel.normalized()
		q := TransformForMode(props, mode)
		ey := q.YieldStrain()
		c := mustSimulate(t, Request{Material: mildSteel, Mode: mode, MachineLimit: 0.3})
		for _, s := range c {
			if s.Ruptured || s.Strain > ey {
				continue
			}
			want := q.Modulus * s.Strain
			if mode == Compression {
				want = -want
			}
			if math.Abs(s.Stress-want) > 1e-6*math.Max(1, math.Abs(want)) {
				t.Errorf("%v: stress(%v) = %v, want Hooke %v", mode, s.Strain, s.Stress, want)
			}
		}
	}
}

func TestSimulateMetalTension(t *testing.T) {
	// E=200000, Sy=250, Su=400, limit 0.30: peak ≈400 inside the
	// window, rupture at 0.32 just past it → terminal marker retained.
	c := mustSimulate(t, Request{Material: mildSteel, Mode: Tension, MachineLimit: 0.30})

	maxStress, ok := c.MaxStress()
	if !ok {
		t.Fatal("no finite stress on curve")
	}
	if math.Abs(maxStress-400) > 5 {
		t.Errorf("max stress = %v, want 400 ±5", maxStress)
	}
	if last := c[len(c)-1]; !last.Ruptured {
		t.Errorf("last sample = %+v, want rupture marker", last)
	}
}

func TestSimulatePureElasticWindow(t *testing.T) {
	// Machine limit far below yield: the whole curve is Hooke's law and
	// the distant rupture is not reported.
	p := MaterialProperties{Category: Metal, ElasticModulus: 1000, YieldStrength: 10}
	c := mustSimulate(t, Request{Material: p, Mode: Tension, MachineLimit: 0.005})

	last := c[len(c)-1]
	if last.Ruptured {
		t.Fatal("distant rupture leaked into a pure-elastic window")
	}
	if math.Abs(last.Stress-5.0) > 1e-6 {
		t.Errorf("final stress = %v, want 5.0", last.Stress)
	}
}

func TestSimulateCompressionNegative(t *testing.T) {
	p := MaterialProperties{Category: Metal, ElasticModulus: 1000, YieldStrength: 10}
	c := mustSimulate(t, Request{Material: p, Mode: Compression, MachineLimit: 0.005})

	last := c[len(c)-1]
	if math.Abs(last.Stress-(-5.0)) > 1e-6 {
		t.Errorf("final stress = %v, want -5.0", last.Stress)
	}
	for _, s := range c {
		if s.Ruptured {
			t.Fatal("compression curve ruptured")
		}
		if s.Stress > 0 {
			t.Fatalf("positive stress %v in compression", s.Stress)
		}
	}
}

func TestSimulateCompressionNeverFlattens(t *testing.T) {
	// Hardening keeps climbing through the whole window; |stress| at
	// the limit is the curve's extreme.
	c := mustSimulate(t, Request{Material: mildSteel, Mode: Compression, MachineLimit: 0.4})
	last := c[len(c)-1]
	maxStress, _ := c.MaxStress()
	if maxStress != last.Stress {
		t.Errorf("extreme stress %v not at the machine limit (last = %v)", maxStress, last.Stress)
	}
}

func TestSimulateTorsionElasticSlope(t *testing.T) {
	// Slope of the elastic shear region is G = E/(2(1+ν)) ≈ 76923.
	p := MaterialProperties{Category: Metal, ElasticModulus: 200000, YieldStrength: 250, PoissonRatio: 0.3}
	c := mustSimulate(t, Request{Material: p, Mode: Torsion, MachineLimit: 0.001})

	s := c[len(c)/2]
	if s.Strain == 0 {
		t.Fatal("midpoint sample at zero strain")
	}
	slope := s.Stress / s.Strain
	want := 200000 / (2 * 1.3)
	if math.Abs(slope-want) > 100 {
		t.Errorf("elastic shear slope = %v, want %v ±100", slope, want)
	}
}

func TestSimulateCeramicRupturesImmediately(t *testing.T) {
	p := MaterialProperties{Category: Ceramic, ElasticModulus: 300000, YieldStrength: 200, UltimateStrength: 220}
	c := mustSimulate(t, Request{Material: p, Mode: Tension, MachineLimit: 0.05})

	for _, s := range c {
		if s.Strain >= 0.02 && !s.Ruptured {
			t.Fatalf("ceramic still intact at strain %v", s.Strain)
		}
	}
	if !c.Ruptured() {
		t.Fatal("ceramic curve has no rupture")
	}
}

func TestSimulateBrittleMonotone(t *testing.T) {
	p := MaterialProperties{Category: Ceramic, ElasticModulus: 300000, YieldStrength: 200, UltimateStrength: 220}
	c := mustSimulate(t, Request{Material: p, Mode: Tension, MachineLimit: 0.0015})

	prev := math.Inf(-1)
	for _, s := range c {
		if s.Ruptured {
			break
		}
		if s.Stress < prev {
			t.Fatalf("brittle curve softens: %v after %v", s.Stress, prev)
		}
		prev = s.Stress
	}
}

func TestSimulateDuctilePeakEqualsUltimate(t *testing.T) {
	cases := []struct {
		name     string
		props    MaterialProperties
		mode     TestMode
		limit    float64
		ultimate float64
	}{
		{"metal tension", mildSteel, Tension, 0.35, 400},
		{"flexion MOR", mildSteel, Flexion, 0.5, 400 * flexureUltimateFactor},
		{
			"polymer cold drawing",
			MaterialProperties{Category: Polymer, ElasticModulus: 2000, YieldStrength: 40, UltimateStrength: 60},
			Tension, 0.9, 60,
		},
		{
			// Stiff polymer whose rupture (0.10) sits inside the
			// yield-drop interval (εy = 0.08): must still reach Su.
			"stiff polymer",
			MaterialProperties{Category: Polymer, ElasticModulus: 2500, YieldStrength: 200, UltimateStrength: 220},
			Tension, 0.2, 220,
		},
	}
	for _, tc := range cases {
		c := mustSimulate(t, Request{Material: tc.props, Mode: tc.mode, MachineLimit: tc.limit})
		maxStress, ok := c.MaxStress()
		if !ok {
			t.Fatalf("%s: no finite stress", tc.name)
		}
		if math.Abs(maxStress-tc.ultimate) > 0.02*tc.ultimate {
			t.Errorf("%s: max stress = %v, want %v ±2%%", tc.name, maxStress, tc.ultimate)
		}
	}
}

func TestSimulateRupturedSamplesPastRupture(t *testing.T) {
	p := MaterialProperties{Category: Metal, ElasticModulus: 210000, YieldStrength: 900, UltimateStrength: 950}
	d, err := EstimateDuctility(p, Tension)
	if err != nil {
		t.Fatal(err)
	}
	c := mustSimulate(t, Request{Material: p, Mode: Tension, MachineLimit: 0.2})
	for _, s := range c {
		if s.Strain > d.RuptureStrain*ruptureMarkerFactor && !s.Ruptured {
			t.Fatalf("finite stress %v at strain %v past rupture %v", s.Stress, s.Strain, d.RuptureStrain)
		}
	}
}

func TestSimulateStrainMonotoneWithinLimit(t *testing.T) {
	for _, mode := range []TestMode{Tension, Compression, Torsion, Flexion} {
		c := mustSimulate(t, Request{Material: mildSteel, Mode: mode, MachineLimit: 0.3})
		for i := 1; i < len(c); i++ {
			if c[i].Strain <= c[i-1].Strain {
				t.Fatalf("%v: strain not increasing at %d", mode, i)
			}
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	req := Request{Material: mildSteel, Mode: Tension, MachineLimit: 0.3, PointCount: 500}
	a := mustSimulate(t, req)
	b := mustSimulate(t, req)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulateDefaultPointCount(t *testing.T) {
	c := mustSimulate(t, Request{Material: mildSteel, Mode: Compression, MachineLimit: 0.3})
	if len(c) != DefaultPointCount {
		t.Errorf("len(curve) = %d, want %d", len(c), DefaultPointCount)
	}
}

func TestSimulateValidation(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"point count", Request{Material: mildSteel, Mode: Tension, MachineLimit: 0.3, PointCount: 1}, ErrPointCount},
		{"machine limit", Request{Material: mildSteel, Mode: Tension, MachineLimit: 0}, ErrNonPositiveLimit},
		{
			"modulus",
			Request{Material: MaterialProperties{YieldStrength: 10}, Mode: Tension, MachineLimit: 0.3},
			ErrNonPositiveModulus,
		},
		{
			"yield",
			Request{Material: MaterialProperties{ElasticModulus: 1000}, Mode: Tension, MachineLimit: 0.3},
			ErrNonPositiveYield,
		},
	}
	for _, tc := range cases {
		c, err := Simulate(tc.req)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
		if c != nil {
			t.Errorf("%s: partial curve returned alongside error", tc.name)
		}
	}
}
