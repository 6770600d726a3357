// Package prim implements primitives for 3D graphics: vectors and rays.
package prim

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used throughout the renderer for float
// equality, degenerate-determinant rejection, self-intersection
// offsets, and zero-length guards.
const Epsilon = 1e-8

// Vec3 is an immutable-by-convention triple of float64, used for
// positions, directions, colors and light intensities alike. Every
// operation returns a new Vec3; none mutate the receiver, to avoid
// aliasing across recursive trace calls.
type Vec3 struct {
	X, Y, Z float64
}

// RGB is a convenience function to construct a vector
// from normalized RGB values [0.0, 1.0].
func RGB(r, g, b float64) Vec3 {
	return Vec3{X: r, Y: g, Z: b}
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies two vectors pointwise (the Hadamard product).
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) CosineSimilarity(other Vec3) float64 {
	return v.Dot(other) / (v.Length() * other.Length())
}

// Lerp linearly interpolates from v to other by t in [0, 1].
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Normalize returns a unit-length copy of v. Normalizing a zero-length
// vector is undefined by the caller's contract; Normalize reports it
// as an error instead of silently dividing by zero.
func (v Vec3) Normalize() (Vec3, error) {
	magnitude := v.Length()
	if magnitude < Epsilon {
		return Vec3{}, fmt.Errorf("prim: cannot normalize zero-length vector %v", v)
	}
	return Vec3{v.X / magnitude, v.Y / magnitude, v.Z / magnitude}, nil
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0 && v.Z == 0.0
}

// RGBA implements the image/color.Color interface so a Vec3 can be
// handed directly to the standard image package.
func (v Vec3) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	return uint32(clamp(0, 1, v.X) * max), uint32(clamp(0, 1, v.Y) * max), uint32(clamp(0, 1, v.Z) * max), max
}

// ClampUnit clamps the X, Y, and Z values between 0 and 1.
func (v Vec3) ClampUnit() Vec3 {
	return Vec3{clamp(0, 1, v.X), clamp(0, 1, v.Y), clamp(0, 1, v.Z)}
}

// Pow raises every component of v to the power p.
func (v Vec3) Pow(p float64) Vec3 {
	return Vec3{math.Pow(v.X, p), math.Pow(v.Y, p), math.Pow(v.Z, p)}
}

// Max returns the largest of the three components.
func (v Vec3) Max() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// Equal reports whether v and other are within Epsilon of each other,
// component-wise.
func (v Vec3) Equal(other Vec3) bool {
	return math.Abs(v.X-other.X) < Epsilon &&
		math.Abs(v.Y-other.Y) < Epsilon &&
		math.Abs(v.Z-other.Z) < Epsilon
}

// clamp limits x between min and max
func clamp(min, max, x float64) float64 {
	return math.Min(math.Max(x, min), max)
}

// Ray is a pinhole-camera or secondary ray: an origin plus a
// unit-length direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay constructs a Ray, normalizing direction. It returns an error
// if direction is zero-length.
func NewRay(origin, direction Vec3) (Ray, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return Ray{}, fmt.Errorf("prim: new ray: %w", err)
	}
	return Ray{Origin: origin, Direction: unit}, nil
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}
