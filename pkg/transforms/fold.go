package transforms

import (
	"math/cmplx"

	"github.com/willbeason/folding/pkg/geometry"
)

// Fold reflects v0 across the line through v1 and v3, then rotates vertex
// roles so the reflected point becomes the new v3:
//
//	(v0, v1, v2, v3) -> (v1, v2, v3, folded)
//
// When v1 == v3 the line is undefined. The division by zero is not
// guarded: the folded vertex comes out NaN or infinite, and every later
// fold inherits it.
type Fold struct{}

func (Fold) Next(q geometry.Quad) geometry.Quad {
	v0, v1, v2, v3 := q[0], q[1], q[2], q[3]

	d := v3 - v1
	folded := cmplx.Conj(v0-v1)*d/cmplx.Conj(d) + v1

	return geometry.Quad{v1, v2, v3, folded}
}

// Degenerate is whether folding q divides by zero.
func Degenerate(q geometry.Quad) bool {
	return q[1] == q[3]
}
