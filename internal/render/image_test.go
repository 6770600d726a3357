package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/polevgart/raytracer-go/internal/prim"
)

func TestToneMapAllDarkFallsBackToBackground(t *testing.T) {
	img := NewImage(2, 2)
	background := prim.RGB(0.1, 0.2, 0.3)
	img.toneMap(background)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !img.Pixels[y][x].Equal(background) {
				t.Errorf("pixel (%d,%d) = %v, want background %v", x, y, img.Pixels[y][x], background)
			}
		}
	}
}

func TestToneMapAppliesExtendedReinhard(t *testing.T) {
	img := NewImage(1, 1)
	img.Pixels[0][0] = prim.RGB(0.5, 1.5, 3.0)
	img.toneMap(prim.Vec3{})

	p := img.Pixels[0][0]
	// p <- p * (1 + p/L^2) / (1 + p), with L = max = 3.0
	want := prim.Vec3{
		X: 0.5 * (1 + 0.5/9.0) / (1 + 0.5),
		Y: 1.5 * (1 + 1.5/9.0) / (1 + 1.5),
		Z: 3.0 * (1 + 3.0/9.0) / (1 + 3.0),
	}
	if diff := cmp.Diff(p, want, cmpopts.EquateApprox(1e-9, 0.0)); diff != "" {
		t.Errorf("toneMap() mismatch (-got +want):\n%s", diff)
	}
}

func TestGammaCorrectSkippedWhenAllBelowEpsilon(t *testing.T) {
	img := NewImage(1, 1)
	img.Pixels[0][0] = prim.Vec3{X: 1e-10, Y: 1e-10, Z: 1e-10}
	before := img.Pixels[0][0]
	img.gammaCorrect(2.2)
	if !img.Pixels[0][0].Equal(before) {
		t.Errorf("gammaCorrect() modified a near-zero image: got %v, want unchanged %v", img.Pixels[0][0], before)
	}
}

func TestGammaCorrectAppliesInversePower(t *testing.T) {
	img := NewImage(1, 1)
	img.Pixels[0][0] = prim.RGB(0.5, 0.25, 1.0)
	img.gammaCorrect(2.0)
	want := prim.RGB(0.5, 0.25, 1.0).Pow(0.5)
	if diff := cmp.Diff(img.Pixels[0][0], want, cmpopts.EquateApprox(1e-9, 0.0)); diff != "" {
		t.Errorf("gammaCorrect() mismatch (-got +want):\n%s", diff)
	}
}

func TestQuantizeChannelClampsAndRounds(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 1, want: 255},
		{in: 2, want: 255},
		{in: 0.5, want: 128}, // round(0.5*255) = round(127.5) = 128
	}
	for _, tt := range tests {
		if got := quantizeChannel(tt.in); got != tt.want {
			t.Errorf("quantizeChannel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
