package mechsim

import "errors"

// Validation errors. A simulation either fails with one of these before
// any curve is built, or completes fully; there are no partial curves.
var (
	ErrNonPositiveModulus = errors.New("mechsim: elastic modulus must be positive")
	ErrNonPositiveYield   = errors.New("mechsim: yield strength must be positive")
	ErrNonPositiveLimit   = errors.New("mechsim: machine limit must be positive")
	ErrPointCount         = errors.New("mechsim: point count must be at least 2")
	ErrUnknownTestMode    = errors.New("mechsim: unknown test mode")
	ErrInvalidGeometry    = errors.New("mechsim: specimen geometry dimensions must be positive")
)
