package math3d

import "fmt"

// Tuple is a homogeneous coordinate. W is 1 for points and 0 for vectors.
// Arithmetic does not enforce that; point+point yields W=2.
type Tuple struct {
	X, Y, Z, W float32
}

// T creates a raw tuple.
func T(x, y, z, w float32) Tuple {
	return Tuple{x, y, z, w}
}

// Point creates a tuple with W=1.
func Point(x, y, z float32) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector creates a tuple with W=0.
func Vector(x, y, z float32) Tuple {
	return Tuple{x, y, z, 0}
}

// Zero returns the zero vector.
func Zero() Tuple {
	return Vector(0, 0, 0)
}

// IsPoint reports whether W is exactly 1.
func (a Tuple) IsPoint() bool {
	return a.W == 1
}

// IsVector reports whether W is exactly 0.
func (a Tuple) IsVector() bool {
	return a.W == 0
}

// Add returns the component-wise sum a + b.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference a - b.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns the zero vector minus a.
func (a Tuple) Negate() Tuple {
	return Zero().Sub(a)
}

// Scale returns a * s, W included.
func (a Tuple) Scale(s float32) Tuple {
	return Tuple{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div returns a / s, W included. Dividing by zero gives IEEE infinities.
func (a Tuple) Div(s float32) Tuple {
	return Tuple{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

// Magnitude returns the Euclidean norm over all four components.
func (a Tuple) Magnitude() float32 {
	return sqrt32(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// Normalize returns a divided by its magnitude.
// The zero tuple has no direction and normalises to NaN.
func (a Tuple) Normalize() Tuple {
	return a.Div(a.Magnitude())
}

// Dot returns the four-component dot product a · b.
func (a Tuple) Dot(b Tuple) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product of the XYZ parts as a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Equal reports whether every component of a and b is within TupleEpsilon.
func (a Tuple) Equal(b Tuple) bool {
	return ApproxEqual(a.X, b.X, TupleEpsilon) &&
		ApproxEqual(a.Y, b.Y, TupleEpsilon) &&
		ApproxEqual(a.Z, b.Z, TupleEpsilon) &&
		ApproxEqual(a.W, b.W, TupleEpsilon)
}

func (a Tuple) String() string {
	switch {
	case a.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", a.X, a.Y, a.Z)
	case a.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", a.X, a.Y, a.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", a.X, a.Y, a.Z, a.W)
	}
}
