// Package tuple provides homogeneous-coordinate points, vectors and colors.
//
// # Overview
//
// A [Tuple] carries four float32 components. The fourth component, W,
// tells points from vectors: points have W = 1 and vectors have W = 0.
// Build them with [Point] and [Vector] rather than by hand so the
// convention holds.
//
//	p := tuple.Point(0, 1, 0)
//	v := tuple.Vector(1, 1, 0).Normalize()
//	next := p.Add(v) // still a point
//
// A [Color] carries red, green and blue float32 components with no range
// restriction. Arithmetic never clamps; clamping happens only when a color
// is converted for display (see [Color.RGBA]).
//
// # Semantics
//
// Every operation is pure and total. Nothing validates its operands:
// adding two points yields W = 2, and dividing by zero or normalizing a
// zero vector yields IEEE-754 infinities and NaNs. Equality is exact Go
// ==; use Approx when the expected value is not exactly representable.
//
// # Interop
//
// Tuples and colors convert to golang.org/x/image/math/f32 vectors, colors
// satisfy image/color.Color, and [Color.GPU] produces a gputypes.Color clear
// value for WebGPU render passes.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package tuple

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
