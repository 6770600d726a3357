package render

import (
	"math"

	"github.com/polevgart/raytracer-go/internal/geom"
	"github.com/polevgart/raytracer-go/internal/prim"
)

// shade computes ambient + per-light diffuse/specular contributions
// at a single surface point. Local lighting is skipped entirely when
// the ray is inside a refractive volume (there is no surface to light
// from inside a medium) or the material's albedo.x contribution is
// effectively zero.
func shade(scene *Scene, ray prim.Ray, hit geom.Intersection, obj geom.Object, inside bool) prim.Vec3 {
	mat := obj.Material()
	intensity := mat.Ambient

	if inside || mat.Albedo.X <= prim.Epsilon {
		return intensity
	}

	shiftedPos := hit.Position.Add(hit.Normal.Scale(prim.Epsilon))
	viewDir := ray.Direction.Neg()

	diffuseTotal := prim.Vec3{}
	specularTotal := prim.Vec3{}

	for _, light := range scene.Lights {
		lightOffset := light.Origin.Sub(shiftedPos)
		if !scene.isPointIlluminated(shiftedPos, lightOffset) {
			continue
		}
		lightDir, err := lightOffset.Normalize()
		if err != nil {
			continue
		}

		diffuseCoeff := math.Max(0, hit.Normal.Dot(lightDir))
		diffuseTotal = diffuseTotal.Add(light.Intensity.Scale(diffuseCoeff))

		specularDot := math.Max(0, viewDir.Dot(geom.Reflect(lightDir.Neg(), hit.Normal)))
		specularCoeff := math.Pow(specularDot, mat.SpecularExponent)
		specularTotal = specularTotal.Add(light.Intensity.Scale(specularCoeff))
	}

	intensity = intensity.Add(mat.Diffuse.Mul(diffuseTotal).Scale(mat.Albedo.X))
	intensity = intensity.Add(mat.Specular.Mul(specularTotal).Scale(mat.Albedo.X))
	return intensity
}

// traceRay implements the recursive primary/reflection/refraction
// shading recurrence: local shading at the closest hit, then
// reflection and/or refraction spawned from that point and weighted
// by the material's albedo, down to a recursion depth budget. It
// returns ok=false only when the ray hits nothing at all (background
// color is the caller's responsibility).
func traceRay(scene *Scene, ray prim.Ray, depth int, inside bool) (prim.Vec3, bool) {
	hit, obj, ok := scene.findClosest(ray)
	if !ok {
		return prim.Vec3{}, false
	}

	intensity := shade(scene, ray, hit, obj, inside)
	if depth <= 1 {
		return intensity, true
	}

	mat := obj.Material()

	if !inside && mat.Albedo.Y > prim.Epsilon {
		newDir := geom.Reflect(ray.Direction, hit.Normal)
		newOrigin := hit.Position.Add(hit.Normal.Scale(prim.Epsilon))
		if reflectedRay, err := prim.NewRay(newOrigin, newDir); err == nil {
			if reflected, ok := traceRay(scene, reflectedRay, depth-1, false); ok {
				intensity = intensity.Add(reflected.Scale(mat.Albedo.Y))
			}
		}
	}

	if inside || mat.Albedo.Z > prim.Epsilon {
		eta := mat.RefractionIndex
		if !inside {
			eta = 1 / eta
		}
		if newDir, ok := geom.Refract(ray.Direction, hit.Normal, eta); ok {
			newOrigin := hit.Position.Sub(hit.Normal.Scale(prim.Epsilon))
			if refractedRay, err := prim.NewRay(newOrigin, newDir); err == nil {
				nextInside := inside != obj.HasVolume()
				if refracted, ok := traceRay(scene, refractedRay, depth-1, nextInside); ok {
					weight := mat.Albedo.Z
					if inside {
						weight = 1.0
					}
					intensity = intensity.Add(refracted.Scale(weight))
				}
			}
		}
	}

	return intensity, true
}
