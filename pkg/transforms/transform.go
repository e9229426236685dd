package transforms

import (
	"github.com/willbeason/folding/pkg/geometry"
)

// A Transform advances a quadrilateral by one step.
//
// Implementations must be deterministic: the same input always yields the
// same output, so orbits and animations are reproducible.
type Transform interface {
	Next(geometry.Quad) geometry.Quad
}

var _ Transform = Fold{}
