// Package geom implements the geometric primitives of the ray
// tracer: materials, ray/object intersection for spheres and
// triangles, and the reflect/refract direction operators.
package geom

import (
	"fmt"
	"math"

	"github.com/polevgart/raytracer-go/internal/prim"
)

// Material describes how a surface responds to light. Albedo is a
// triple of weights (not required to sum to 1): X gates and weights
// local diffuse/specular shading (ambient is always added unweighted),
// Y gates the reflection contribution, Z gates the refraction
// contribution.
type Material struct {
	Ambient          prim.Vec3
	Diffuse          prim.Vec3
	Specular         prim.Vec3
	SpecularExponent float64
	RefractionIndex  float64
	Albedo           prim.Vec3
}

// DefaultMaterial is the zero-value-friendly default: all colors
// black, refraction index 1 (vacuum), albedo (1, 0, 0) so an
// unconfigured surface is locally shaded and neither reflects nor
// refracts.
func DefaultMaterial() Material {
	return Material{RefractionIndex: 1.0, Albedo: prim.RGB(1, 0, 0)}
}

// withDefaults fills in the zero-value gaps of a Material literal the
// way Python's attrs defaults would: a caller-provided RefractionIndex
// of 0 and Albedo of the zero vector are the two fields whose zero
// value is not a sensible default.
func (m Material) withDefaults() Material {
	if m.RefractionIndex == 0 {
		m.RefractionIndex = 1.0
	}
	if m.Albedo.IsZero() {
		m.Albedo = prim.RGB(1, 0, 0)
	}
	return m
}

// Intersection records where a ray met an object.
type Intersection struct {
	Position prim.Vec3
	Normal   prim.Vec3 // unit length
	Distance float64   // > 0
}

// Object is the polymorphic scene-object interface implemented by
// Sphere and Triangle. Dispatch stays a plain interface-method call
// rather than a type switch since scenes have no acceleration
// structure and are scanned linearly regardless.
type Object interface {
	Intersect(ray prim.Ray) (Intersection, bool)
	HasVolume() bool
	Material() Material
}

// Sphere is a ray-traceable sphere.
type Sphere struct {
	Center prim.Vec3
	Radius float64
	Mat    Material
}

// NewSphere validates radius and fills in material defaults.
func NewSphere(center prim.Vec3, radius float64, mat Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("geom: sphere radius must be positive, got %v", radius)
	}
	return &Sphere{Center: center, Radius: radius, Mat: mat.withDefaults()}, nil
}

func (s *Sphere) Material() Material { return s.Mat }
func (s *Sphere) HasVolume() bool    { return true }

// solveQuadratic solves a*t^2 + b*t + c = 0, returning the two roots
// (x1 <= x2) in the non-degenerate case. It panics on the degenerate
// a=b=c=0 case (infinite solutions): with ray directions always unit
// length, a is always 1 in Sphere.Intersect, so this path is
// unreachable in practice, but is coded defensively rather than left
// to silently return a bogus root.
func solveQuadratic(a, b, c float64) (x1, x2 float64, ok bool) {
	if a == 0 {
		if b == 0 {
			if c == 0 {
				panic("geom: degenerate quadratic a=b=c=0 has infinite solutions")
			}
			return 0, 0, false
		}
		x := -c / b
		return x, x, true
	}
	d := b*b - 4*a*c
	if d < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(d)
	x1 = (-b - sqrtD) / (2.0 * a)
	x2 = (-b + sqrtD) / (2.0 * a)
	if a < 0 {
		x1, x2 = x2, x1
	}
	return x1, x2, true
}

// Intersect solves |o + t*d - c|^2 = r^2 as a quadratic in t. With d
// unit-length, a = d.d = 1, though the general quadratic solver is
// still used so the formula stays correct if that assumption ever
// changes.
func (s *Sphere) Intersect(ray prim.Ray) (Intersection, bool) {
	dpos := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * dpos.Dot(ray.Direction)
	c := dpos.Dot(dpos) - s.Radius*s.Radius

	x1, x2, ok := solveQuadratic(a, b, c)
	if !ok {
		return Intersection{}, false
	}

	distance := x1
	if distance <= 0 {
		distance = x2
	}
	if distance <= 0 {
		return Intersection{}, false
	}

	point := ray.Origin.Add(ray.Direction.Scale(distance))
	normal := point.Sub(s.Center).Div(s.Radius)
	if c < 0 {
		// Ray originates inside the sphere: flip the normal to face
		// the incoming ray.
		normal = normal.Neg()
	}
	return Intersection{Position: point, Normal: normal, Distance: distance}, true
}

// Triangle is a ray-traceable flat triangle with no volume.
type Triangle struct {
	V0, V1, V2 prim.Vec3
	Mat        Material
}

// NewTriangle validates the vertex count (exactly 3; the slice-based
// constructor accepts any length, so malformed input must be rejected
// explicitly rather than silently truncated or read out of bounds)
// and fills in material defaults.
func NewTriangle(vertices []prim.Vec3, mat Material) (*Triangle, error) {
	if len(vertices) != 3 {
		return nil, fmt.Errorf("geom: triangle requires exactly 3 vertices, got %d", len(vertices))
	}
	return &Triangle{V0: vertices[0], V1: vertices[1], V2: vertices[2], Mat: mat.withDefaults()}, nil
}

func (t *Triangle) Material() Material { return t.Mat }
func (t *Triangle) HasVolume() bool    { return false }

// Intersect implements the Möller–Trumbore ray-triangle intersection
// algorithm.
func (t *Triangle) Intersect(ray prim.Ray) (Intersection, bool) {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	h := ray.Direction.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < prim.Epsilon {
		// Ray is parallel to the triangle's plane.
		return Intersection{}, false
	}
	invDet := 1.0 / det

	s := ray.Origin.Sub(t.V0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	q := s.Cross(e1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	dist := invDet * e2.Dot(q)
	if dist < 0 {
		return Intersection{}, false
	}

	pos := ray.Origin.Add(ray.Direction.Scale(dist))
	norm := e1.Cross(e2)
	if ray.Direction.Dot(norm) > 0 {
		// Flip so the normal always faces the incoming ray.
		norm = norm.Neg()
	}
	norm, err := norm.Normalize()
	if err != nil {
		// Degenerate (zero-area) triangle; treat as a miss.
		return Intersection{}, false
	}
	return Intersection{Position: pos, Normal: norm, Distance: dist}, true
}

// Reflect computes the reflection of the incident direction d around
// surface normal n, which must point into the hemisphere containing
// -d: reflect(d, n) = d + 2*(-n.d)*n.
func Reflect(d, n prim.Vec3) prim.Vec3 {
	cosIncidence := -n.Dot(d)
	return d.Add(n.Scale(2 * cosIncidence))
}

// Refract computes the refracted direction of incident direction d
// across a surface with normal n (facing into -d's hemisphere) and
// relative refractive index eta = n1/n2. It returns ok=false on total
// internal reflection.
func Refract(d, n prim.Vec3, eta float64) (refracted prim.Vec3, ok bool) {
	cosIncidence := -n.Dot(d)
	beta := 1 - eta*eta*(1-cosIncidence*cosIncidence)
	if beta < 0 {
		return prim.Vec3{}, false
	}
	return d.Scale(eta).Add(n.Scale(eta*cosIncidence - math.Sqrt(beta))), true
}
