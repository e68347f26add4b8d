package canvas

import "math"

// affine is a 2D affine transformation
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) translate(x, y float64) affine {
	m.e += m.a*x + m.c*y
	m.f += m.b*x + m.d*y
	return m
}

func (m affine) rotate(angle float64) affine {
	sin, cos := math.Sincos(angle)
	return affine{
		a: m.a*cos + m.c*sin,
		b: m.b*cos + m.d*sin,
		c: m.c*cos - m.a*sin,
		d: m.d*cos - m.b*sin,
		e: m.e,
		f: m.f,
	}
}

// apply maps the user space point (x,y) to device space.
func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// angle returns the rotation part of m in radians.
func (m affine) angle() float64 {
	return math.Atan2(m.b, m.a)
}
