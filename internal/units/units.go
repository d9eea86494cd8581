// Package units converts engine results (always SI: MPa, N, mm) into
// display units. Conversion happens only at presentation boundaries;
// the engine never sees Imperial values.
package units

import "fmt"

// Conversion factors from SI.
const (
	MPaToKsi = 0.1450377
	NToLbf   = 0.224809
	MmToIn   = 0.0393701
)

// System selects the display unit system.
type System int

const (
	SI System = iota
	Imperial
)

// ParseSystem maps a system name to its enum value.
func ParseSystem(s string) (System, error) {
	switch s {
	case "si", "SI", "metric", "":
		return SI, nil
	case "imperial", "Imperial", "us":
		return Imperial, nil
	}
	return SI, fmt.Errorf("units: unknown system %q", s)
}

// Stress converts a stress value in MPa for display.
func (s System) Stress(mpa float64) float64 {
	if s == Imperial {
		return mpa * MPaToKsi
	}
	return mpa
}

// StressLabel returns the stress unit label.
func (s System) StressLabel() string {
	if s == Imperial {
		return "ksi"
	}
	return "MPa"
}

// Force converts a force value in N for display.
func (s System) Force(n float64) float64 {
	if s == Imperial {
		return n * NToLbf
	}
	return n
}

// ForceLabel returns the force unit label.
func (s System) ForceLabel() string {
	if s == Imperial {
		return "lbf"
	}
	return "N"
}

// Length converts a length in mm for display.
func (s System) Length(mm float64) float64 {
	if s == Imperial {
		return mm * MmToIn
	}
	return mm
}

// LengthLabel returns the length unit label.
func (s System) LengthLabel() string {
	if s == Imperial {
		return "in"
	}
	return "mm"
}

// String returns the system name.
func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "si"
}
