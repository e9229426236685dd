package geometry

// A Quad is an ordered quadrilateral (v0, v1, v2, v3) in the complex plane.
//
// Order matters: transforms refer to vertices by position, not by identity.
type Quad [4]complex128

// Vertices returns the four vertices in order as a new slice.
func (q Quad) Vertices() []complex128 {
	return []complex128{q[0], q[1], q[2], q[3]}
}

// Points returns the vertices mapped to the plane.
func (q Quad) Points() []XY {
	return []XY{ToXY(q[0]), ToXY(q[1]), ToXY(q[2]), ToXY(q[3])}
}

// Finite is whether every vertex has finite coordinates.
func (q Quad) Finite() bool {
	for _, v := range q {
		if !ToXY(v).Finite() {
			return false
		}
	}
	return true
}
