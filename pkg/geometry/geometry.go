package geometry

import (
	"math"
)

// XY is a point in the plane.
type XY struct {
	X, Y float64
}

// ToXY maps a complex number to the plane, real part along X.
func ToXY(z complex128) XY {
	return XY{X: real(z), Y: imag(z)}
}

// Finite is whether neither coordinate is NaN or infinite.
func (xy XY) Finite() bool {
	return !math.IsNaN(xy.X) && !math.IsInf(xy.X, 0) &&
		!math.IsNaN(xy.Y) && !math.IsInf(xy.Y, 0)
}
