package mechsim

import (
	"math"
	"testing"
)

func TestSegmentAt(t *testing.T) {
	sg := segment{e0: 0.1, e1: 0.3, s0: 100, s1: 200, exp: 1}
	if got := sg.at(0.2); math.Abs(got-150) > 1e-9 {
		t.Errorf("linear segment at midpoint = %v, want 150", got)
	}
	sg.exp = 0.5
	if got := sg.at(0.2); math.Abs(got-(100+100*math.Sqrt(0.5))) > 1e-9 {
		t.Errorf("power segment at midpoint = %v, want %v", got, 100+100*math.Sqrt(0.5))
	}
}

func TestSegmentAtZeroSpan(t *testing.T) {
	sg := segment{e0: 0.1, e1: 0.1, s0: 100, s1: 200, exp: 0.5}
	if got := sg.at(0.1); got != 200 {
		t.Errorf("zero-span segment = %v, want endpoint 200", got)
	}
}

func TestProfileElasticRegionIsExact(t *testing.T) {
	q := ModeQuantities{Modulus: 200000, Yield: 250, Ultimate: 400}
	p := ductileProfile(q, q.YieldStrain(), 0.32)
	for _, e := range []float64{0, 0.0002, 0.001, q.YieldStrain()} {
		s, ok := p.stressAt(e)
		if !ok {
			t.Fatalf("stressAt(%v) ruptured below yield", e)
		}
		if math.Abs(s-200000*e) > 1e-9 {
			t.Errorf("stressAt(%v) = %v, want Hooke %v", e, s, 200000*e)
		}
	}
}

func TestProfileRupture(t *testing.T) {
	q := ModeQuantities{Modulus: 200000, Yield: 250, Ultimate: 400}
	p := ductileProfile(q, q.YieldStrain(), 0.32)
	if _, ok := p.stressAt(0.321); ok {
		t.Error("stressAt past rupture returned a value")
	}
	if _, ok := p.stressAt(0.32); !ok {
		t.Error("stressAt at rupture should still be defined")
	}
}

func TestDuctileProfilePeaksAtUltimate(t *testing.T) {
	q := ModeQuantities{Modulus: 200000, Yield: 250, Ultimate: 400}
	ey := q.YieldStrain()
	p := ductileProfile(q, ey, 0.32)
	peak := ey + peakPositionFraction*(0.32-ey)

	s, ok := p.stressAt(peak)
	if !ok || math.Abs(s-400) > 1e-9 {
		t.Errorf("stress at peak = %v (ok=%v), want 400", s, ok)
	}
	// Softening: fracture stress below the peak.
	s, ok = p.stressAt(0.32)
	if !ok || math.Abs(s-400*neckingDropFactor) > 1e-9 {
		t.Errorf("stress at rupture = %v (ok=%v), want %v", s, ok, 400*neckingDropFactor)
	}
}

func TestBrittleProfileMonotone(t *testing.T) {
	q := ModeQuantities{Modulus: 300000, Yield: 200, Ultimate: 220}
	ey := q.YieldStrain()
	p := brittleProfile(q, ey, ey+0.0005)

	prev := -1.0
	for e := 0.0; e <= ey+0.0005; e += 0.00005 {
		s, ok := p.stressAt(e)
		if !ok {
			break
		}
		if s < prev {
			t.Fatalf("brittle profile not monotone: stress %v after %v", s, prev)
		}
		prev = s
	}
}

func TestPolymerProfilePhases(t *testing.T) {
	q := ModeQuantities{Modulus: 2000, Yield: 40, Ultimate: 60}
	ey := q.YieldStrain() // 0.02
	rupture := 0.8
	p := polymerProfile(q, ey, rupture)

	// Yield drop: past 2εy the stress sits at the cold-draw level.
	draw := 40 * polymerDrawStressFactor
	s, _ := p.stressAt(ey * polymerDropEndFactor)
	if math.Abs(s-draw) > 1e-9 {
		t.Errorf("stress at drop end = %v, want %v", s, draw)
	}

	// Plateau: constant stress while the neck propagates.
	s1, _ := p.stressAt(0.2)
	s2, _ := p.stressAt(0.5)
	if math.Abs(s1-draw) > 1e-9 || math.Abs(s2-draw) > 1e-9 {
		t.Errorf("plateau stresses = %v, %v, want %v", s1, s2, draw)
	}

	// Final hardening reaches Su at rupture.
	s, ok := p.stressAt(rupture)
	if !ok || math.Abs(s-60) > 1e-9 {
		t.Errorf("stress at rupture = %v (ok=%v), want 60", s, ok)
	}
}

func TestBuildProfilePolymerShortSpanSnapsBrittle(t *testing.T) {
	// Rupture barely past yield (1.25·εy): no room for a stable neck,
	// so the branch is the straight brittle run to Su, not cold
	// drawing topping out at the draw stress.
	q := ModeQuantities{Modulus: 2500, Yield: 200, Ultimate: 220}
	d := Ductility{RuptureStrain: 0.10}
	p := buildProfile(Polymer, Tension, q, d, 0.2)

	s, ok := p.stressAt(0.10)
	if !ok || math.Abs(s-220) > 1e-9 {
		t.Errorf("stress at rupture = %v (ok=%v), want 220", s, ok)
	}
}

func TestPolymerProfileDropLeavesRoomForHardening(t *testing.T) {
	// Rupture between 1.5·εy and 2·εy: the drop interval is capped at
	// half the plastic span so the final hardening segment still
	// reaches Su.
	q := ModeQuantities{Modulus: 2400, Yield: 900, Ultimate: 990}
	ey := q.YieldStrain()
	p := polymerProfile(q, ey, 1.8*ey)

	s, ok := p.stressAt(1.8 * ey)
	if !ok || math.Abs(s-990) > 1e-9 {
		t.Errorf("stress at rupture = %v (ok=%v), want 990", s, ok)
	}
}

func TestCompressionProfileExtrapolates(t *testing.T) {
	q := ModeQuantities{Modulus: 200000, Yield: 250, Ultimate: 400}
	p := compressionProfile(q, 0.3)
	if !math.IsInf(p.rupture, 1) {
		t.Fatalf("compression profile rupture = %v, want +Inf", p.rupture)
	}
	// Well past the pre-built span the law extends linearly, still rising.
	s1, ok1 := p.stressAt(0.5)
	s2, ok2 := p.stressAt(0.9)
	if !ok1 || !ok2 {
		t.Fatal("compression profile ruptured")
	}
	if s2 <= s1 {
		t.Errorf("compression stress not increasing: %v then %v", s1, s2)
	}
}

func TestGenerateGridShape(t *testing.T) {
	q := ModeQuantities{Modulus: 200000, Yield: 250, Ultimate: 400}
	p := ductileProfile(q, q.YieldStrain(), 0.32)
	c := generate(p, 0.30, 300)

	// 300 grid samples plus the off-grid rupture marker.
	if len(c) != 301 {
		t.Fatalf("len(curve) = %d, want 301", len(c))
	}
	if c[0].Strain != 0 || c[0].Stress != 0 {
		t.Errorf("first sample = %+v, want (0, 0)", c[0])
	}
	if c[299].Strain != 0.30 {
		t.Errorf("last grid strain = %v, want 0.30", c[299].Strain)
	}
	if !c[300].Ruptured {
		t.Error("terminal marker not ruptured")
	}
	for i := 1; i < len(c); i++ {
		if c[i].Strain <= c[i-1].Strain {
			t.Fatalf("strain not increasing at %d: %v after %v", i, c[i].Strain, c[i-1].Strain)
		}
	}
}

func TestGenerateNoMarkerWhenRuptureInsideGrid(t *testing.T) {
	q := ModeQuantities{Modulus: 300000, Yield: 200, Ultimate: 220}
	p := brittleProfile(q, q.YieldStrain(), 0.0012)
	c := generate(p, 0.05, 100)
	if len(c) != 100 {
		t.Fatalf("len(curve) = %d, want 100 (no extra marker)", len(c))
	}
	// The grid itself carries the ruptured tail.
	if !c[len(c)-1].Ruptured {
		t.Error("tail samples past rupture not marked")
	}
}

func TestClipDropsFarMarker(t *testing.T) {
	c := Curve{
		{Strain: 0, Stress: 0},
		{Strain: 0.003, Stress: 3},
		{Strain: 0.005, Stress: 5},
		{Strain: 0.07, Ruptured: true},
	}
	got := Clip(c, 0.005)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (marker at 0.07 dropped)", len(got))
	}
	if got[len(got)-1].Ruptured {
		t.Error("far rupture marker survived clipping")
	}
}

func TestClipKeepsNearMarker(t *testing.T) {
	c := Curve{
		{Strain: 0, Stress: 0},
		{Strain: 0.29, Stress: 390},
		{Strain: 0.3203, Ruptured: true},
	}
	got := Clip(c, 0.30)
	if !got[len(got)-1].Ruptured {
		t.Error("rupture marker just past the window was dropped")
	}
}

func TestClipKeepsRupturedSamplesInsideWindow(t *testing.T) {
	c := Curve{
		{Strain: 0, Stress: 0},
		{Strain: 0.01, Stress: 100},
		{Strain: 0.02, Ruptured: true},
		{Strain: 0.03, Ruptured: true},
		{Strain: 0.06, Stress: 1},
	}
	got := Clip(c, 0.05)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if !got[2].Ruptured || !got[3].Ruptured {
		t.Error("ruptured samples inside the window were dropped")
	}
}

func TestClipGuaranteesOrigin(t *testing.T) {
	got := Clip(Curve{{Strain: 0.2, Stress: 10}}, 0.1)
	if len(got) == 0 || got[0].Strain != 0 || got[0].Stress != 0 {
		t.Errorf("Clip did not restore the (0,0) origin: %+v", got)
	}
}

func TestCurveMaxStress(t *testing.T) {
	c := Curve{
		{Strain: 0, Stress: 0},
		{Strain: 0.1, Stress: 250},
		{Strain: 0.2, Stress: 400},
		{Strain: 0.3, Stress: 340},
		{Strain: 0.32, Ruptured: true},
	}
	got, ok := c.MaxStress()
	if !ok || got != 400 {
		t.Errorf("MaxStress() = %v, %v, want 400, true", got, ok)
	}
}

func TestCurveMaxStressCompression(t *testing.T) {
	c := Curve{{Strain: 0, Stress: 0}, {Strain: 0.1, Stress: -250}, {Strain: 0.2, Stress: -380}}
	got, ok := c.MaxStress()
	if !ok || got != -380 {
		t.Errorf("MaxStress() = %v, %v, want -380, true", got, ok)
	}
}

func TestCurveStrainPercent(t *testing.T) {
	c := Curve{{Strain: 0.05, Stress: 10}}
	if got := c.StrainPercent(Tension); got[0] != 5 {
		t.Errorf("tension percent = %v, want 5", got[0])
	}
	if got := c.StrainPercent(Torsion); got[0] != 0.05 {
		t.Errorf("torsion angular strain = %v, want 0.05 unchanged", got[0])
	}
}
