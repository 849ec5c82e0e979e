package tuple

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Tuple is a homogeneous 4-component value.
// W is 1 for points and 0 for vectors. The type does not enforce this;
// construct with Point or Vector to keep the convention.
type Tuple struct {
	X, Y, Z, W float32
}

// Point returns a point (W = 1).
func Point(x, y, z float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector returns a free vector (W = 0).
func Vector(x, y, z float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether W is exactly 1.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether W is exactly 0.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum.
// Point+vector is a point and vector+vector a vector. Point+point is
// not rejected; its W is 2.
func (t Tuple) Add(u Tuple) Tuple {
	return Tuple{X: t.X + u.X, Y: t.Y + u.Y, Z: t.Z + u.Z, W: t.W + u.W}
}

// Sub returns the component-wise difference.
// Point-point is a vector, point-vector a point.
func (t Tuple) Sub(u Tuple) Tuple {
	return Tuple{X: t.X - u.X, Y: t.Y - u.Y, Z: t.Z - u.Z, W: t.W - u.W}
}

// Neg returns the negation of all four components, W included.
func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Mul returns the tuple scaled by s.
func (t Tuple) Mul(s float32) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s, W: t.W * s}
}

// Div returns the tuple divided by s.
// Dividing by zero yields infinities or NaN.
func (t Tuple) Div(s float32) Tuple {
	return Tuple{X: t.X / s, Y: t.Y / s, Z: t.Z / s, W: t.W / s}
}

// Magnitude returns the Euclidean norm over all four components.
// For a vector this is its 3D length; for a point W contributes.
func (t Tuple) Magnitude() float32 {
	return float32(math.Sqrt(float64(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)))
}

// Normalize returns the tuple divided by its magnitude.
// A zero tuple yields NaN components.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

// Dot returns the dot product over all four components.
func (t Tuple) Dot(u Tuple) float32 {
	return t.X*u.X + t.Y*u.Y + t.Z*u.Z + t.W*u.W
}

// Cross returns the 3D cross product of the x, y and z components as a
// vector. Both W components are ignored.
func (t Tuple) Cross(u Tuple) Tuple {
	return Vector(
		t.Y*u.Z-t.Z*u.Y,
		t.Z*u.X-t.X*u.Z,
		t.X*u.Y-t.Y*u.X,
	)
}

// Approx returns true if two tuples are approximately equal within epsilon.
func (t Tuple) Approx(u Tuple, epsilon float32) bool {
	return near(t.X, u.X, epsilon) && near(t.Y, u.Y, epsilon) &&
		near(t.Z, u.Z, epsilon) && near(t.W, u.W, epsilon)
}

// String returns the debug form, discriminant included.
func (t Tuple) String() string {
	return fmt.Sprintf("Tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// Vec4 converts the tuple to an f32.Vec4 in x, y, z, w order.
func (t Tuple) Vec4() f32.Vec4 {
	return f32.Vec4{t.X, t.Y, t.Z, t.W}
}

// TupleFromVec4 converts an f32.Vec4 in x, y, z, w order to a Tuple.
func TupleFromVec4(v f32.Vec4) Tuple {
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// near reports whether |a-b| is strictly less than epsilon.
func near(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}
