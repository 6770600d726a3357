package render

import (
	"github.com/polevgart/raytracer-go/internal/geom"
	"github.com/polevgart/raytracer-go/internal/prim"
)

// PointLight is a point light source with a per-channel intensity.
type PointLight struct {
	Origin    prim.Vec3
	Intensity prim.Vec3
}

// Scene holds an ordered list of objects and lights. Insertion order
// is preserved and only matters for find-closest tie-breaking; the
// scene is read-only during a render pass so it is safe to share
// across parallel workers.
type Scene struct {
	Objects []geom.Object
	Lights  []PointLight
}

// AddObject appends obj to the scene's object list.
func (s *Scene) AddObject(obj geom.Object) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends light to the scene's light list.
func (s *Scene) AddLight(light PointLight) {
	s.Lights = append(s.Lights, light)
}

// findClosest linearly scans all objects and returns the hit with
// the smallest distance, strictly closer than the current best so
// the first object in insertion order wins ties.
func (s *Scene) findClosest(ray prim.Ray) (geom.Intersection, geom.Object, bool) {
	var best geom.Intersection
	var bestObj geom.Object
	found := false
	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(ray)
		if !ok {
			continue
		}
		if !found || best.Distance > hit.Distance {
			best = hit
			bestObj = obj
			found = true
		}
	}
	return best, bestObj, found
}

// isPointIlluminated shoots a shadow ray from point toward
// lightOffset (not necessarily unit length) and reports whether any
// object occludes it before the light. The light is occluded (and
// this returns false) iff an intersection distance is strictly less
// than |lightOffset|.
func (s *Scene) isPointIlluminated(point, lightOffset prim.Vec3) bool {
	lightDir, err := lightOffset.Normalize()
	if err != nil {
		// The light sits exactly at the shading point; treat it as
		// illuminated since there is no meaningful shadow ray.
		return true
	}
	distToLight := lightOffset.Length()
	shadowRay, err := prim.NewRay(point, lightDir)
	if err != nil {
		return true
	}
	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(shadowRay)
		if !ok {
			continue
		}
		if hit.Distance < distToLight {
			return false
		}
	}
	return true
}
