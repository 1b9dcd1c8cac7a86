package scene

import (
	"github.com/hukka/go-weekend-raytracer/pkg/geometry"
	mathpkg "github.com/hukka/go-weekend-raytracer/pkg/math"
	"github.com/hukka/go-weekend-raytracer/pkg/renderer"
)

// Output dimensions of the default scene in pixels
const (
	Width  = 255
	Height = 255
)

// Scene holds the camera and the single sphere it looks at. Everything is
// constructed once and never mutated during a render.
type Scene struct {
	Camera *renderer.Camera
	Sphere *geometry.Sphere
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetSphere returns the scene's sphere
func (s *Scene) GetSphere() *geometry.Sphere { return s.Sphere }

// NewDefaultScene creates the standard scene: a camera on the negative
// x-axis looking down +x at a unit sphere twenty units away.
func NewDefaultScene() *Scene {
	return &Scene{
		Camera: renderer.NewCamera(
			mathpkg.NewVec3(-10, 0, 0), // position
			mathpkg.NewVec3(10, 0, 0),  // direction
			mathpkg.NewVec3(0, 1, 0),   // up
			Width, Height,
		),
		Sphere: geometry.NewSphere(mathpkg.NewVec3(10, 0, 0), 1.0),
	}
}
