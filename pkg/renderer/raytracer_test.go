package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/hukka/go-weekend-raytracer/pkg/geometry"
	mathpkg "github.com/hukka/go-weekend-raytracer/pkg/math"
)

// testScene mirrors the documented scene: camera at (-10,0,0) looking
// down +x at a unit sphere at (10,0,0).
type testScene struct {
	camera *Camera
	sphere *geometry.Sphere
}

func (s *testScene) GetCamera() *Camera          { return s.camera }
func (s *testScene) GetSphere() *geometry.Sphere { return s.sphere }

func newTestScene(width, height int) *testScene {
	return &testScene{
		camera: NewCamera(
			mathpkg.NewVec3(-10, 0, 0),
			mathpkg.NewVec3(10, 0, 0),
			mathpkg.NewVec3(0, 1, 0),
			width, height,
		),
		sphere: geometry.NewSphere(mathpkg.NewVec3(10, 0, 0), 1.0),
	}
}

func TestRaytracer_PixelColor_Gradient(t *testing.T) {
	rt := NewRaytracer(newTestScene(255, 255))

	// Pixels whose rays clearly miss the sphere get the x/y gradient. At
	// 255x255 the integer ramp makes the channel values equal the
	// coordinates themselves.
	tests := []struct {
		name     string
		x, y     int
		expected color.RGBA
	}{
		{"top-left corner", 0, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{"top-right corner", 0, 254, color.RGBA{R: 0, G: 254, B: 0, A: 255}},
		{"bottom-left corner", 254, 0, color.RGBA{R: 254, G: 0, B: 0, A: 255}},
		{"bottom-right corner", 254, 254, color.RGBA{R: 254, G: 254, B: 0, A: 255}},
		{"near corner", 20, 20, color.RGBA{R: 20, G: 20, B: 0, A: 255}},
		{"left edge", 0, 100, color.RGBA{R: 0, G: 100, B: 0, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rt.PixelColor(tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRaytracer_PixelColor_Hit(t *testing.T) {
	scene := newTestScene(255, 255)
	rt := NewRaytracer(scene)

	// Pixels near the image center look straight at the sphere
	hits := []struct{ x, y int }{
		{127, 127},
		{127, 60},
		{30, 127},
	}

	for _, p := range hits {
		got := rt.PixelColor(p.x, p.y)

		if got.G != 0 || got.B != 0 || got.A != 255 {
			t.Errorf("Pixel (%d,%d): expected pure red hit color, got %v", p.x, p.y, got)
		}

		// The red channel carries the banded hit distance
		tHit, ok := scene.sphere.IntersectT(scene.camera.Ray(p.x, p.y))
		if !ok {
			t.Fatalf("Pixel (%d,%d): expected the ray to hit the sphere", p.x, p.y)
		}
		if expected := clampByte((tHit - 1.9) * 1000); got.R != expected {
			t.Errorf("Pixel (%d,%d): expected R=%d from t=%v, got R=%d", p.x, p.y, expected, tHit, got.R)
		}
	}
}

func TestRaytracer_Render(t *testing.T) {
	rt := NewRaytracer(newTestScene(16, 16))
	img := rt.Render()

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Fatalf("Expected 16x16 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The image holds exactly what PixelColor computes per coordinate
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got, want := img.RGBAAt(x, y), rt.PixelColor(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected uint8
	}{
		{"in range", 100.7, 100},
		{"zero", 0, 0},
		{"negative", -950, 0},
		{"above range", 1000, 255},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampByte(tt.in); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
