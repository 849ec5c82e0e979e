package tuple

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Color represents a color with red, green and blue components.
// Components are not restricted to [0, 1].
type Color struct {
	Red, Green, Blue float32
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor is a convenience function to create a Color.
func NewColor(r, g, b float32) Color {
	return Color{Red: r, Green: g, Blue: b}
}

// Add returns the component-wise sum.
func (c Color) Add(d Color) Color {
	return Color{Red: c.Red + d.Red, Green: c.Green + d.Green, Blue: c.Blue + d.Blue}
}

// Sub returns the component-wise difference.
func (c Color) Sub(d Color) Color {
	return Color{Red: c.Red - d.Red, Green: c.Green - d.Green, Blue: c.Blue - d.Blue}
}

// Hadamard returns the component-wise product, used to tint or blend.
func (c Color) Hadamard(d Color) Color {
	return Color{Red: c.Red * d.Red, Green: c.Green * d.Green, Blue: c.Blue * d.Blue}
}

// Mul returns the color scaled by s.
func (c Color) Mul(s float32) Color {
	return Color{Red: c.Red * s, Green: c.Green * s, Blue: c.Blue * s}
}

// Approx returns true if two colors are approximately equal within epsilon.
func (c Color) Approx(d Color, epsilon float32) bool {
	return near(c.Red, d.Red, epsilon) && near(c.Green, d.Green, epsilon) &&
		near(c.Blue, d.Blue, epsilon)
}

// String returns the debug form of the color.
func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g)", c.Red, c.Green, c.Blue)
}

// RGBA implements the color.Color interface.
// Components are clamped to [0, 1] and alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return to16(c.Red), to16(c.Green), to16(c.Blue), 0xffff
}

// Vec3 converts the color to an f32.Vec3 in red, green, blue order.
func (c Color) Vec3() f32.Vec3 {
	return f32.Vec3{c.Red, c.Green, c.Blue}
}

// ColorFromVec3 converts an f32.Vec3 in red, green, blue order to a Color.
func ColorFromVec3(v f32.Vec3) Color {
	return Color{Red: v[0], Green: v[1], Blue: v[2]}
}

// GPU converts the color to an opaque gputypes.Color, suitable as a render
// pass clear value. Components are passed through unclamped.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{
		R: float64(c.Red),
		G: float64(c.Green),
		B: float64(c.Blue),
		A: 1,
	}
}

// to16 clamps x to [0, 1] and scales it to [0, 0xffff].
func to16(x float32) uint32 {
	v := float64(x)
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v*0xffff + 0.5)
}
