package raytracer

// This file builds a handful of canned demo scenes covering the
// renderer's main features (ambient/diffuse/specular shading,
// double-sided triangles, reflection, refraction, and deep recursion),
// reused both by cmd/raytrace and by the package's own tests.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ThreeSpheresScene returns the "three spheres" scene: an
// ambient-only, a diffuse-only, and a specular-only sphere, lit by a
// single point light. Intended to be rendered at depth=1.
func ThreeSpheresScene() *Scene {
	scene := &Scene{}
	scene.AddObject(must(NewSphere(Vec3{X: -0.4, Y: 0, Z: -0.5}, 0.15, Material{
		Ambient: RGB(0.5, 0, 0),
		Albedo:  Vec3{X: 1, Y: 0, Z: 0},
	})))
	scene.AddObject(must(NewSphere(Vec3{X: 0, Y: 0, Z: -0.5}, 0.15, Material{
		Diffuse: RGB(0, 0.5, 0),
		Albedo:  Vec3{X: 1, Y: 0, Z: 0},
	})))
	scene.AddObject(must(NewSphere(Vec3{X: 0.4, Y: 0, Z: -0.5}, 0.15, Material{
		Specular:         RGB(0, 0, 0.5),
		SpecularExponent: 500,
		Albedo:           Vec3{X: 1, Y: 0, Z: 0},
	})))
	scene.AddLight(PointLight{Origin: Vec3{X: -0.2, Y: 0, Z: 0}, Intensity: RGB(0.5, 0.5, 0.5)})
	return scene
}

// ThreeSpheresCameraOptions returns the camera for ThreeSpheresScene:
// at the origin, looking down -z.
func ThreeSpheresCameraOptions(width, height int) CameraOptions {
	return NewCameraOptions(width, height)
}

// BlueTriangleScene returns a single blue-diffuse triangle lit by one
// light above and one below its plane; it is visible from either side,
// so the camera alone determines whether it is seen face-on or from
// behind.
func BlueTriangleScene() *Scene {
	scene := &Scene{}
	scene.AddObject(must(NewTriangle([]Vec3{
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: 0},
	}, Material{
		Diffuse: RGB(0, 0, 0.8),
		Albedo:  Vec3{X: 1, Y: 0, Z: 0},
	})))
	scene.AddLight(PointLight{Origin: Vec3{X: 0, Y: 5, Z: 0}, Intensity: RGB(1, 1, 1)})
	scene.AddLight(PointLight{Origin: Vec3{X: 0, Y: -5, Z: 0}, Intensity: RGB(1, 1, 1)})
	return scene
}

// TriangleCameraLookingDown views BlueTriangleScene from above.
func TriangleCameraLookingDown(width, height int) CameraOptions {
	cam := NewCameraOptions(width, height)
	cam.LookFrom = Vec3{X: 0, Y: 2, Z: 0}
	cam.LookTo = Vec3{X: 0, Y: 0, Z: 0}
	return cam
}

// TriangleCameraLookingUp views BlueTriangleScene from below; the
// triangle must still be visible since its normal flips to face the
// incoming ray.
func TriangleCameraLookingUp(width, height int) CameraOptions {
	cam := NewCameraOptions(width, height)
	cam.LookFrom = Vec3{X: 0, Y: -2, Z: 0}
	cam.LookTo = Vec3{X: 0, Y: 0, Z: 0}
	return cam
}

// CornellBoxScene returns a Cornell-box-like scene: two spheres and
// five colored walls lit by two point lights, exercising reflection
// and refraction recursion at depth=4.
func CornellBoxScene() *Scene {
	scene := &Scene{}

	// Mirror sphere.
	scene.AddObject(must(NewSphere(Vec3{X: -0.4, Y: -0.6, Z: -2.4}, 0.4, Material{
		Ambient: RGB(0.05, 0.05, 0.05),
		Diffuse: RGB(0.1, 0.1, 0.1),
		Albedo:  Vec3{X: 0.2, Y: 0.8, Z: 0},
	})))
	// Glass sphere.
	scene.AddObject(must(NewSphere(Vec3{X: 0.5, Y: -0.7, Z: -1.8}, 0.3, Material{
		Ambient:         RGB(0.02, 0.02, 0.02),
		RefractionIndex: 1.5,
		Albedo:          Vec3{X: 0.1, Y: 0.1, Z: 0.8},
	})))

	const wallDist = 3.0
	wall := func(center, v1, v2 Vec3, color Vec3) {
		corner1 := center.Add(v1).Add(v2)
		corner2 := center.Add(v1).Sub(v2)
		corner3 := center.Sub(v1).Sub(v2)
		corner4 := center.Sub(v1).Add(v2)
		mat := Material{Ambient: color.Scale(0.1), Diffuse: color, Albedo: Vec3{X: 1, Y: 0, Z: 0}}
		scene.AddObject(must(NewTriangle([]Vec3{corner1, corner2, corner3}, mat)))
		scene.AddObject(must(NewTriangle([]Vec3{corner1, corner3, corner4}, mat)))
	}
	right := Vec3{X: wallDist, Y: 0, Z: 0}
	up := Vec3{X: 0, Y: wallDist, Z: 0}
	fwd := Vec3{X: 0, Y: 0, Z: wallDist}

	wall(Vec3{X: 0, Y: -wallDist, Z: -wallDist}, right, fwd, RGB(0.8, 0.8, 0.8))   // floor
	wall(Vec3{X: 0, Y: wallDist, Z: -wallDist}, right, fwd, RGB(0.8, 0.8, 0.8))    // ceiling
	wall(Vec3{X: -wallDist, Y: 0, Z: -wallDist}, up, fwd, RGB(0.8, 0.1, 0.1))      // left (red)
	wall(Vec3{X: wallDist, Y: 0, Z: -wallDist}, up, fwd, RGB(0.1, 0.8, 0.1))       // right (green)
	wall(Vec3{X: 0, Y: 0, Z: -2 * wallDist}, right, up, RGB(0.8, 0.8, 0.8))        // back

	scene.AddLight(PointLight{Origin: Vec3{X: -0.5, Y: wallDist - 0.1, Z: -wallDist}, Intensity: RGB(0.6, 0.6, 0.6)})
	scene.AddLight(PointLight{Origin: Vec3{X: 0.5, Y: wallDist - 0.1, Z: -2 * wallDist}, Intensity: RGB(0.4, 0.4, 0.4)})
	return scene
}

// CornellBoxCameraOptions returns the camera for CornellBoxScene, with
// a pi/3 fov (narrower than the pi/2 default).
func CornellBoxCameraOptions(width, height int) CameraOptions {
	cam := NewCameraOptions(width, height)
	cam.Fov = 3.141592653589793 / 3
	return cam
}

// MirrorRoomScene returns a room of four mirrored walls plus one
// sphere and one point light, exercising deep reflection recursion.
// The walls have no ambient, diffuse or specular color, so their local
// shading is zero even with albedo.x = 10; albedo.y = 0.5 adds half of
// each reflected ray's color.
func MirrorRoomScene() *Scene {
	scene := &Scene{}
	scene.AddObject(must(NewSphere(Vec3{X: 0, Y: 0, Z: -2}, 0.4, Material{
		Ambient: RGB(0.4, 0.1, 0.1),
		Diffuse: RGB(0.4, 0.1, 0.1),
		Albedo:  Vec3{X: 1, Y: 0, Z: 0},
	})))

	const room = 2.0
	mirror := Material{Albedo: Vec3{X: 10, Y: 0.5, Z: 0}}
	wall := func(center, v1, v2 Vec3) {
		corner1 := center.Add(v1).Add(v2)
		corner2 := center.Add(v1).Sub(v2)
		corner3 := center.Sub(v1).Sub(v2)
		corner4 := center.Sub(v1).Add(v2)
		scene.AddObject(must(NewTriangle([]Vec3{corner1, corner2, corner3}, mirror)))
		scene.AddObject(must(NewTriangle([]Vec3{corner1, corner3, corner4}, mirror)))
	}
	right := Vec3{X: room, Y: 0, Z: 0}
	up := Vec3{X: 0, Y: room, Z: 0}
	fwd := Vec3{X: 0, Y: 0, Z: room}

	wall(Vec3{X: -room, Y: 0, Z: -2 * room}, up, fwd)
	wall(Vec3{X: room, Y: 0, Z: -2 * room}, up, fwd)
	wall(Vec3{X: 0, Y: -room, Z: -2 * room}, right, fwd)
	wall(Vec3{X: 0, Y: room, Z: -2 * room}, right, fwd)

	scene.AddLight(PointLight{Origin: Vec3{X: 0, Y: room - 0.1, Z: -2 * room}, Intensity: RGB(1, 1, 1)})
	return scene
}

// MirrorRoomCameraOptions returns the camera for MirrorRoomScene.
func MirrorRoomCameraOptions(width, height int) CameraOptions {
	cam := NewCameraOptions(width, height)
	cam.LookFrom = Vec3{X: 0, Y: 0, Z: 0.5}
	return cam
}
