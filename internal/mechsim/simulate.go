package mechsim

import "fmt"

// DefaultPointCount is the curve resolution used when the caller does
// not request one.
const DefaultPointCount = 300

// Request bundles the inputs of one simulation.
type Request struct {
	Material MaterialProperties
	Mode     TestMode

	// MachineLimit is the maximum displayable strain (or angle, for
	// torsion): the travel of the virtual testing machine.
	MachineLimit float64

	// PointCount is the curve resolution; 0 means DefaultPointCount.
	PointCount int
}

// Simulate runs one mechanical test and returns the resulting curve.
//
// The computation is pure and deterministic: identical requests yield
// identical curves, nothing is shared between calls, and concurrent
// use needs no synchronization. It either fails validation up front or
// returns a complete, internally consistent curve; stress samples past
// the rupture strain are marked Ruptured rather than fabricated.
// Compression curves carry negative stress and never rupture.
func Simulate(req Request) (Curve, error) {
	if req.PointCount == 0 {
		req.PointCount = DefaultPointCount
	}
	if req.PointCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPointCount, req.PointCount)
	}
	if req.MachineLimit <= 0 {
		return nil, fmt.Errorf("%w: got %.4g", ErrNonPositiveLimit, req.MachineLimit)
	}
	if err := req.Material.Validate(); err != nil {
		return nil, err
	}

	props := req.Material.normalized()

	duct, err := EstimateDuctility(props, req.Mode)
	if err != nil {
		return nil, err
	}

	quantities := TransformForMode(props, req.Mode)
	prof := buildProfile(props.Category, req.Mode, quantities, duct, req.MachineLimit)
	curve := generate(prof, req.MachineLimit, req.PointCount)

	if req.Mode == Compression {
		curve = invertSign(curve)
	}

	return Clip(curve, req.MachineLimit), nil
}
