package mechsim

// clipWindowFactor bounds how far past the machine limit a rupture
// marker may sit and still be kept: a break just off-screen is worth
// showing, one far outside the window is noise.
const clipWindowFactor = 1.1

// Clip trims a curve to the machine window. Finite samples beyond the
// limit are dropped. Ruptured samples are kept (they tell the consumer
// the material has failed at that strain) unless they lie more than
// 10% past the limit. The result always starts at (0, 0).
func Clip(c Curve, machineLimit float64) Curve {
	out := make(Curve, 0, len(c))
	for _, s := range c {
		if s.Ruptured {
			if s.Strain <= machineLimit*clipWindowFactor {
				out = append(out, s)
			}
			continue
		}
		if s.Strain <= machineLimit {
			out = append(out, s)
		}
	}
	if len(out) == 0 || out[0].Strain != 0 {
		out = append(Curve{{Strain: 0, Stress: 0}}, out...)
	}
	return out
}
