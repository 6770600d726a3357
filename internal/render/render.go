package render

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/polevgart/raytracer-go/internal/prim"
)

// RenderOptions configures a single render pass.
type RenderOptions struct {
	Background prim.Vec3
	Depth      int
	Gamma      float64
	Parallel   bool
	// NumWorkers is the scanline worker pool size in parallel mode.
	// 0 means auto (runtime.NumCPU() - 1, minimum 1).
	NumWorkers int
}

// DefaultRenderOptions returns reasonable defaults: black background,
// recursion depth 3, gamma 2.2, serial execution.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Depth: 3, Gamma: 2.2}
}

// withDefaults fills the zero-value gaps in a caller-provided
// RenderOptions (depth and gamma have non-zero defaults; background,
// parallel and NumWorkers are fine at their zero value).
func (o RenderOptions) withDefaults() RenderOptions {
	if o.Depth == 0 {
		o.Depth = 3
	}
	if o.Gamma == 0 {
		o.Gamma = 2.2
	}
	return o
}

// Render renders the scene through camOpts into a fresh Image. No
// acceleration structure is used; objects are scanned linearly per
// ray.
func (s *Scene) Render(camOpts CameraOptions, opts RenderOptions) (*Image, error) {
	opts = opts.withDefaults()

	if camOpts.Fov <= 0 {
		log.Printf("render: fov not specified, using default of pi/2 radians")
		camOpts.Fov = 3.141592653589793 / 2
	}
	if camOpts.ScreenWidth <= 0 || camOpts.ScreenHeight <= 0 {
		return nil, fmt.Errorf("render: screen dimensions must be positive, got %dx%d", camOpts.ScreenWidth, camOpts.ScreenHeight)
	}

	camToWorld, err := lookAt(camOpts.LookFrom, camOpts.LookTo)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	img := NewImage(camOpts.ScreenWidth, camOpts.ScreenHeight)
	var anyHit atomic.Bool

	renderRow := func(j int) error {
		for i := 0; i < camOpts.ScreenWidth; i++ {
			ray, err := primaryRay(camToWorld, camOpts, i, j)
			if err != nil {
				return fmt.Errorf("render: pixel (%d, %d): %w", i, j, err)
			}
			color, ok := traceRay(s, ray, opts.Depth, false)
			if !ok {
				color = opts.Background
			} else {
				anyHit.Store(true)
			}
			img.Pixels[j][i] = color
		}
		return nil
	}

	if !opts.Parallel {
		for j := 0; j < camOpts.ScreenHeight; j++ {
			if err := renderRow(j); err != nil {
				return nil, err
			}
		}
	} else {
		if err := renderParallel(camOpts.ScreenHeight, opts.NumWorkers, renderRow); err != nil {
			return nil, err
		}
	}

	// An image in which no primary ray hit an object is left as the
	// background color everywhere; post-processing runs only when at
	// least one pixel shows an object.
	if anyHit.Load() {
		img.postprocess(opts.Background, opts.Gamma)
	}
	return img, nil
}

// renderParallel partitions the [0, height) scanlines across a fixed
// worker pool. Each worker owns a disjoint set of rows and writes
// only to those rows, so no cross-worker synchronization beyond a
// WaitGroup and a shared error collector is needed.
func renderParallel(height, numWorkers int, renderRow func(int) error) error {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU() - 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > height {
		numWorkers = height
	}

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	errs := make(chan error, numWorkers)
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				if err := renderRow(j); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
