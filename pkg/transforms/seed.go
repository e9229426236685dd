package transforms

import (
	"math/cmplx"

	"github.com/willbeason/folding/pkg/geometry"
)

// Seed returns the initial quadrilateral for parameters mu and nu.
//
// With s the principal square root of 1 + mu*nu - mu - nu,
//
//	v0 = -s + i*mu
//	v1 =  s + i*nu
//	v2 = conj(v1)
//	v3 = conj(v0)
//
// so the seed is symmetric about the real axis. A negative radicand gives
// a purely imaginary s rather than NaN.
func Seed(mu, nu float64) geometry.Quad {
	s := cmplx.Sqrt(complex(1+mu*nu-mu-nu, 0))

	v0 := -s + complex(0, mu)
	v1 := s + complex(0, nu)

	return geometry.Quad{v0, v1, cmplx.Conj(v1), cmplx.Conj(v0)}
}
