package raytracer

import (
	"image/png"
	"io"
	"testing"

	"github.com/polevgart/raytracer-go/internal/prim"
)

// renderScenario runs the given demo scene/camera pair through
// Render at the given depth. It also exercises the resulting Image's
// image.Image conformance by encoding it to PNG (the way
// cmd/raytrace does), since that is the boundary where the core
// hands off to the out-of-scope image-encoding collaborator.
func renderScenario(t *testing.T, scene *Scene, cam CameraOptions, opts RenderOptions) *Image {
	t.Helper()
	img, err := scene.Render(cam, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := png.Encode(io.Discard, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return img
}

func TestThreeSpheresSceneRenders(t *testing.T) {
	const w, h = 64, 64
	img := renderScenario(t, ThreeSpheresScene(), ThreeSpheresCameraOptions(w, h), RenderOptions{Depth: 1})

	// Each sphere should be visible and distinguishable from the
	// (black) background somewhere near its expected screen position;
	// spheres are centered at z=-0.5, x in {-0.4, 0, 0.4}, so roughly
	// left/middle/right thirds of the frame. The right sphere is
	// specular-only and stays black except for its small highlight,
	// which lands near the right edge of its disc (x = 7w/8).
	left := img.Pixels[h/2][w/4]
	middle := img.Pixels[h/2][w/2]
	right := img.Pixels[h/2][7*w/8]
	for name, p := range map[string]Vec3{"left": left, "middle": middle, "right": right} {
		if p.Equal(Vec3{}) {
			t.Errorf("%s sphere pixel is background (all zero), want a visible sphere", name)
		}
	}
}

func TestBlueTriangleVisibleFromBothSides(t *testing.T) {
	const w, h = 32, 32
	scene := BlueTriangleScene()

	down := renderScenario(t, scene, TriangleCameraLookingDown(w, h), RenderOptions{Depth: 1})
	up := renderScenario(t, scene, TriangleCameraLookingUp(w, h), RenderOptions{Depth: 1})

	// The triangle's base edge runs through the view center and its
	// apex (0, 0, -1) projects toward the top of the frame from above
	// and toward the bottom from below, so each view is sampled on the
	// center column a few rows into the apex side.
	for name, v := range map[string]struct {
		img *Image
		row int
	}{"looking down": {down, 3 * h / 8}, "looking up": {up, 5 * h / 8}} {
		p := v.img.Pixels[v.row][w/2]
		if p.Equal(Vec3{}) {
			t.Errorf("%s: pixel on the triangle is background, want the triangle visible", name)
		}
	}
}

func TestCornellBoxSceneRendersVariedImage(t *testing.T) {
	const w, h = 48, 48
	img := renderScenario(t, CornellBoxScene(), CornellBoxCameraOptions(w, h), RenderOptions{Depth: 4})

	first := img.Pixels[0][0]
	varied := false
	for y := 0; y < h && !varied; y++ {
		for x := 0; x < w; x++ {
			if !img.Pixels[y][x].Equal(first) {
				varied = true
				break
			}
		}
	}
	if !varied {
		t.Errorf("Cornell box render is a single flat color; want walls/spheres/lighting to vary across pixels")
	}
}

func TestMirrorRoomSceneBrightensWithDepth(t *testing.T) {
	const w, h = 32, 32
	scene := MirrorRoomScene()
	cam := MirrorRoomCameraOptions(w, h)

	shallow := renderScenario(t, scene, cam, RenderOptions{Depth: 1})
	deep := renderScenario(t, scene, cam, RenderOptions{Depth: 9})

	shallowTotal := sumBrightness(shallow)
	deepTotal := sumBrightness(deep)
	if deepTotal < shallowTotal {
		t.Errorf("deep-recursion mirror room is dimmer than shallow (%v < %v); reflection should only add energy", deepTotal, shallowTotal)
	}
}

func sumBrightness(img *Image) float64 {
	total := 0.0
	for _, row := range img.Pixels {
		for _, p := range row {
			total += p.X + p.Y + p.Z
		}
	}
	return total
}

// TestSerialAndParallelRendersAreSimilarUnderSSIM renders the Cornell
// box scene once serially and once across a worker pool and checks
// the two results are perceptually close via SSIM. The scanline
// partitioning means each pixel is still computed independently and
// deterministically, so this is a weaker, smoothed-out counterpart to
// TestRenderSerialAndParallelAgree's exact per-pixel comparison,
// guarding against the kind of subtle drift (e.g. a worker
// miscomputing its row range) that would show up as a perceptible but
// not necessarily huge difference.
func TestSerialAndParallelRendersAreSimilarUnderSSIM(t *testing.T) {
	const w, h = 48, 48
	scene := CornellBoxScene()
	cam := CornellBoxCameraOptions(w, h)

	serial := renderScenario(t, scene, cam, RenderOptions{Depth: 4})
	parallel := renderScenario(t, scene, cam, RenderOptions{Depth: 4, Parallel: true})

	ssim, err := prim.SSIM(serial, parallel)
	if err != nil {
		t.Fatalf("SSIM() error = %v", err)
	}
	if ssim < 0.999 {
		t.Errorf("SSIM(serial, parallel) = %v, want ~1.0", ssim)
	}
}

// Run benchmarks with:
// go test -run ^$ -bench . -cpuprofile=/tmp/cpu.prof
// go tool pprof -http=:8080 /tmp/cpu.prof

func BenchmarkThreeSpheres(b *testing.B) {
	scene := ThreeSpheresScene()
	cam := ThreeSpheresCameraOptions(640, 480)
	for b.Loop() {
		if _, err := scene.Render(cam, RenderOptions{Depth: 1}); err != nil {
			b.Fatalf("Render() error = %v", err)
		}
	}
}

func BenchmarkCornellBox(b *testing.B) {
	scene := CornellBoxScene()
	cam := CornellBoxCameraOptions(320, 240)
	for b.Loop() {
		if _, err := scene.Render(cam, RenderOptions{Depth: 4}); err != nil {
			b.Fatalf("Render() error = %v", err)
		}
	}
}
