package render

import (
	"image"
	"image/color"
	"math"

	"github.com/polevgart/raytracer-go/internal/prim"
)

// Image is a height x width float64 RGB raster. Before post-
// processing, channel values are unclamped and may exceed 1.0; after
// tone-mapping, gamma correction and quantization they implement the
// standard image.Image interface so the result can be handed directly
// to image/png or any other encoder.
type Image struct {
	Width, Height int
	// Pixels is row-major: Pixels[y][x].
	Pixels [][]prim.Vec3
}

// NewImage allocates a zeroed width x height image buffer.
func NewImage(width, height int) *Image {
	pixels := make([][]prim.Vec3, height)
	for y := range pixels {
		pixels[y] = make([]prim.Vec3, width)
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

func (img *Image) ColorModel() color.Model { return color.RGBAModel }

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At quantizes the float pixel at (x, y) to 8-bit RGBA, computing
// round(clamp(p, 0, 1) * 255) so the full [0, 255] byte range is
// reachable and 1.0 maps exactly to 255.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return color.RGBA{}
	}
	p := img.Pixels[y][x]
	return color.RGBA{
		R: quantizeChannel(p.X),
		G: quantizeChannel(p.Y),
		B: quantizeChannel(p.Z),
		A: 0xff,
	}
}

func quantizeChannel(c float64) uint8 {
	c = math.Min(1, math.Max(0, c))
	q := math.Round(c * 255)
	if q > 255 {
		q = 255
	}
	if q < 0 {
		q = 0
	}
	return uint8(q)
}

// maxChannel returns the largest channel value across the whole
// image, used as L in the tone-mapping operator.
func (img *Image) maxChannel() float64 {
	max := 0.0
	for _, row := range img.Pixels {
		for _, p := range row {
			if v := p.Max(); v > max {
				max = v
			}
		}
	}
	return max
}

// toneMap applies the extended Reinhard operator per-channel:
// p <- p * (1 + p/L^2) / (1 + p), where L is the image maximum. If
// L < epsilon the image carries no light at all, so it is replaced by
// background outright rather than dividing by a near-zero L^2.
func (img *Image) toneMap(background prim.Vec3) {
	l := img.maxChannel()
	if l < prim.Epsilon {
		for y := range img.Pixels {
			for x := range img.Pixels[y] {
				img.Pixels[y][x] = background
			}
		}
		return
	}
	lSquared := l * l
	for y := range img.Pixels {
		for x := range img.Pixels[y] {
			p := img.Pixels[y][x]
			img.Pixels[y][x] = prim.Vec3{
				X: toneMapChannel(p.X, lSquared),
				Y: toneMapChannel(p.Y, lSquared),
				Z: toneMapChannel(p.Z, lSquared),
			}
		}
	}
}

func toneMapChannel(p, lSquared float64) float64 {
	return p * (1 + p/lSquared) / (1 + p)
}

// gammaCorrect raises every channel to the power 1/gamma, skipped
// entirely if every pixel is below epsilon (raising a near-zero value
// to a fractional power is numerically unstable and has no visible
// effect anyway).
func (img *Image) gammaCorrect(gamma float64) {
	max := img.maxChannel()
	if max <= prim.Epsilon {
		return
	}
	exp := 1.0 / gamma
	for y := range img.Pixels {
		for x := range img.Pixels[y] {
			img.Pixels[y][x] = img.Pixels[y][x].Pow(exp)
		}
	}
}

// postprocess runs tone mapping followed by gamma correction.
func (img *Image) postprocess(background prim.Vec3, gamma float64) {
	img.toneMap(background)
	img.gammaCorrect(gamma)
}
