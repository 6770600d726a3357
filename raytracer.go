// Package raytracer implements a CPU-based recursive ray tracer: a
// Whitted-style renderer with ambient/diffuse/specular shading,
// recursive reflection and refraction (with Snell's law and total
// internal reflection), spheres and triangles, and a pinhole camera
// driven by a look-at transform.
//
// The package consumes a fully constructed Scene and CameraOptions
// and produces an Image; scene-description loading, a CLI front end,
// image-file encoding, progress reporting and benchmarking harnesses
// are left to callers (see cmd/raytrace for a thin example).
package raytracer

import (
	"github.com/polevgart/raytracer-go/internal/geom"
	"github.com/polevgart/raytracer-go/internal/prim"
	"github.com/polevgart/raytracer-go/internal/render"
)

// Vec3 is a triple of float64 used for positions, directions, colors
// and light intensities.
type Vec3 = prim.Vec3

// RGB constructs a Vec3 used as a color from normalized [0, 1] values.
func RGB(r, g, b float64) Vec3 {
	return prim.RGB(r, g, b)
}

// Material describes a surface's ambient/diffuse/specular color,
// specular exponent, refraction index and albedo weights. See
// DefaultMaterial for the zero-value-friendly defaults.
type Material = geom.Material

// DefaultMaterial returns a Material with reasonable defaults: all
// colors black, refraction index 1.0, albedo (1, 0, 0).
func DefaultMaterial() Material {
	return geom.DefaultMaterial()
}

// Object is the polymorphic scene-object interface implemented by
// Sphere and Triangle.
type Object = geom.Object

// Sphere is a ray-traceable sphere.
type Sphere = geom.Sphere

// NewSphere constructs a Sphere, rejecting non-positive radii.
func NewSphere(center Vec3, radius float64, mat Material) (*Sphere, error) {
	return geom.NewSphere(center, radius, mat)
}

// Triangle is a ray-traceable flat triangle.
type Triangle = geom.Triangle

// NewTriangle constructs a Triangle from exactly 3 vertices, in the
// order (v0, v1, v2); it rejects any other vertex count.
func NewTriangle(vertices []Vec3, mat Material) (*Triangle, error) {
	return geom.NewTriangle(vertices, mat)
}

// PointLight is a point light source with a per-channel intensity.
type PointLight = render.PointLight

// CameraOptions configures the pinhole camera.
type CameraOptions = render.CameraOptions

// NewCameraOptions returns a CameraOptions for the given raster size
// with reasonable defaults: fov = pi/2, look_from = origin,
// look_to = (0, 0, -1).
func NewCameraOptions(screenWidth, screenHeight int) CameraOptions {
	return render.NewCameraOptions(screenWidth, screenHeight)
}

// RenderOptions configures a single render pass: background color,
// recursion depth budget, gamma, and serial/parallel execution.
type RenderOptions = render.RenderOptions

// DefaultRenderOptions returns reasonable defaults: black background,
// depth 3, gamma 2.2, serial execution.
func DefaultRenderOptions() RenderOptions {
	return render.DefaultRenderOptions()
}

// Image is a height x width RGB raster, implementing image.Image
// once a Scene.Render call has post-processed it.
type Image = render.Image

// Scene holds an ordered list of objects and lights and exposes the
// render entry point. Insertion order is preserved and only affects
// find-closest tie-breaking.
type Scene = render.Scene
