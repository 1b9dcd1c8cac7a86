package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/hukka/go-weekend-raytracer/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetSphere() *geometry.Sphere
}

// Raytracer computes pixel colors for a scene. It holds no mutable state;
// every pixel is a pure function of the scene and its coordinates.
type Raytracer struct {
	scene  Scene
	width  int
	height int
}

// NewRaytracer creates a new raytracer sized from the scene's camera
func NewRaytracer(scene Scene) *Raytracer {
	camera := scene.GetCamera()
	return &Raytracer{
		scene:  scene,
		width:  camera.PixelWidth,
		height: camera.PixelHeight,
	}
}

// Width returns the output width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the output height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// PixelColor computes the color for one pixel: generate the camera ray,
// intersect it with the scene's sphere, and map the hit distance to a red
// shade. Pixels whose rays miss get the background gradient.
//
// The hit distance is in units of the pixel's non-normalized ray
// direction, not world-space length; the (t-1.9)*1000 banding depends on
// that and is kept as is.
func (rt *Raytracer) PixelColor(x, y int) color.RGBA {
	ray := rt.scene.GetCamera().Ray(x, y)

	if t, ok := rt.scene.GetSphere().IntersectT(ray); ok {
		return color.RGBA{R: clampByte((t - 1.9) * 1000), G: 0, B: 0, A: 255}
	}

	return rt.gradientColor(x, y)
}

// gradientColor is the miss fallback: red ramps with x, green with y
func (rt *Raytracer) gradientColor(x, y int) color.RGBA {
	return color.RGBA{
		R: uint8(x * 255 / rt.width),
		G: uint8(y * 255 / rt.height),
		B: 0,
		A: 255,
	}
}

// Render evaluates every pixel into a fresh image. Callers that redraw
// repeatedly get a full re-evaluation each time; nothing is cached.
func (rt *Raytracer) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			img.SetRGBA(x, y, rt.PixelColor(x, y))
		}
	}
	return img
}

// clampByte saturates a float to the [0, 255] byte range, with NaN
// mapping to zero. Go leaves out-of-range float-to-integer conversion
// unspecified, so the saturation is explicit.
func clampByte(f float64) uint8 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
