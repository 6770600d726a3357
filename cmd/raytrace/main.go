// The raytrace command renders one of the built-in demo scenes to a
// PNG file. Scene selection, output-file writing, and CLI flag
// parsing are an external collaborator around the render core: the
// core itself never knows about files or flags.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	rt "github.com/polevgart/raytracer-go"
)

var (
	scene = flag.String("scene", "spheres", "demo scene to render: spheres, triangle, triangle-inverted, cornell, mirrors")

	outFile = flag.String("out_file", "", "png filename to write")

	width  = flag.Int("width", 640, "output image width in pixels")
	height = flag.Int("height", 480, "output image height in pixels")
	depth  = flag.Int("depth", 3, "recursion depth budget")

	parallel   = flag.Bool("parallel", false, "render scanlines across a worker pool")
	numWorkers = flag.Int("num_workers", 0, "parallel worker count; 0 means auto")
	gamma      = flag.Float64("gamma", 2.2, "gamma correction exponent")
)

func buildScene(name string, w, h int) (*rt.Scene, rt.CameraOptions, error) {
	switch name {
	case "spheres":
		return rt.ThreeSpheresScene(), rt.ThreeSpheresCameraOptions(w, h), nil
	case "triangle":
		return rt.BlueTriangleScene(), rt.TriangleCameraLookingDown(w, h), nil
	case "triangle-inverted":
		return rt.BlueTriangleScene(), rt.TriangleCameraLookingUp(w, h), nil
	case "cornell":
		return rt.CornellBoxScene(), rt.CornellBoxCameraOptions(w, h), nil
	case "mirrors":
		return rt.MirrorRoomScene(), rt.MirrorRoomCameraOptions(w, h), nil
	default:
		return nil, rt.CameraOptions{}, fmt.Errorf("unknown scene %q", name)
	}
}

func writeImage(img *rt.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func main() {
	flag.Parse()
	if len(*outFile) == 0 {
		log.Fatal("--out_file is required")
	}

	sceneObj, camOpts, err := buildScene(*scene, *width, *height)
	if err != nil {
		log.Fatal(err)
	}

	opts := rt.RenderOptions{
		Depth:      *depth,
		Gamma:      *gamma,
		Parallel:   *parallel,
		NumWorkers: *numWorkers,
	}

	img, err := sceneObj.Render(camOpts, opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeImage(img, *outFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFile)
}
