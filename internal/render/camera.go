package render

import (
	"fmt"
	"math"

	"github.com/polevgart/raytracer-go/internal/prim"
)

// CameraOptions configures the pinhole camera used to generate
// primary rays.
type CameraOptions struct {
	ScreenWidth, ScreenHeight int
	Fov                       float64 // radians; default pi/2
	LookFrom                  prim.Vec3
	LookTo                    prim.Vec3
}

// NewCameraOptions returns a CameraOptions for the given raster size
// with sensible defaults already filled in: vertical FOV of
// pi/2 (the horizontal extent is widened by the aspect ratio),
// looking from the origin toward (0, 0, -1).
func NewCameraOptions(screenWidth, screenHeight int) CameraOptions {
	return CameraOptions{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Fov:          math.Pi / 2,
		LookFrom:     prim.Vec3{},
		LookTo:       prim.Vec3{X: 0, Y: 0, Z: -1},
	}
}

// cameraToWorld holds an orthonormal look-at basis: its rows are
// right, up, forward, and the translation lookFrom, with an implicit
// bottom-right 1.
type cameraToWorld struct {
	right, up, forward, lookFrom prim.Vec3
}

// lookAt builds an orthonormal camera-to-world basis from an eye
// position and a target point: forward points from the target back to
// the eye, and right/up are derived from forward and a world up hint
// so the three stay mutually perpendicular.
func lookAt(lookFrom, lookTo prim.Vec3) (cameraToWorld, error) {
	forward, err := lookFrom.Sub(lookTo).Normalize()
	if err != nil {
		return cameraToWorld{}, fmt.Errorf("render: look_at: look_from and look_to must differ: %w", err)
	}

	upHint := prim.Vec3{X: 0, Y: 1, Z: 0}
	right := upHint.Cross(forward)
	if right.Length() < prim.Epsilon {
		right = (prim.Vec3{X: 0, Y: 0, Z: 1}).Cross(forward)
		if upHint.Dot(forward) > 0 {
			right = right.Neg()
		}
	}
	right, err = right.Normalize()
	if err != nil {
		return cameraToWorld{}, fmt.Errorf("render: look_at: degenerate up/forward basis: %w", err)
	}

	up := forward.Cross(right)
	return cameraToWorld{right: right, up: up, forward: forward, lookFrom: lookFrom}, nil
}

// vectorMultiply rotates a direction into world space, ignoring
// translation: it applies the transpose of M's top-left 3x3 to v,
// where M's rows are right/up/forward.
func vectorMultiply(m cameraToWorld, v prim.Vec3) prim.Vec3 {
	return m.right.Scale(v.X).Add(m.up.Scale(v.Y)).Add(m.forward.Scale(v.Z))
}

// pointMultiply maps a point through the camera-to-world transform.
//
// This divides by (p . lookFrom + 1), a non-standard convention: for
// p = origin (the camera's own eye point) this correctly yields 1 and
// the divide is a no-op, but for any other p it is not a standard
// affine/projective transform. Preserved exactly, intentionally, since
// rendered images depend on it bit-for-bit.
func pointMultiply(m cameraToWorld, p prim.Vec3) prim.Vec3 {
	result := vectorMultiply(m, p).Add(m.lookFrom)
	depth := p.Dot(m.lookFrom) + 1
	return result.Div(depth)
}

// primaryRay builds the primary ray through the center of pixel
// (i, j), 0 <= i < width, 0 <= j < height.
func primaryRay(m cameraToWorld, opts CameraOptions, i, j int) (prim.Ray, error) {
	scale := math.Tan(opts.Fov / 2)
	aspect := float64(opts.ScreenWidth) / float64(opts.ScreenHeight)

	x := (2*(float64(i)+0.5)/float64(opts.ScreenWidth) - 1) * aspect * scale
	y := (1 - 2*(float64(j)+0.5)/float64(opts.ScreenHeight)) * scale

	direction := vectorMultiply(m, prim.Vec3{X: x, Y: y, Z: -1})
	origin := pointMultiply(m, prim.Vec3{})
	return prim.NewRay(origin, direction)
}
