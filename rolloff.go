// Package rolloff models the displacement of pixel positions near the edges
// of an imaging sensor.
//
// Charge collected close to the physical edge of a CCD does not land on the
// ideal, linear pixel grid.  The [EdgeRolloff] type describes this effect
// along one axis as a function of the nominal pixel coordinate x, using the
// Stubbs parameterization
//
//	x' = x + A*(exp(-(w - x)/s) - exp(-x/s))
//
// where A is the amplitude of the rolloff, s is its length scale and w is
// the width of the sensor.  The nominal coordinate range is [0, w].
//
// All models implement the [Functor] interface, which provides evaluation,
// the analytic derivative and cloning.  [Inverse] uses these to map actual
// pixel positions back to nominal ones.
package rolloff

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
