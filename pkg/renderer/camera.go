package renderer

import (
	mathpkg "github.com/hukka/go-weekend-raytracer/pkg/math"
)

// Camera generates one ray per output pixel. It is built from a position,
// a view direction and an "up" vector (Height); the horizontal basis
// vector is derived from those two, never stored. All fields are treated
// as immutable after construction.
type Camera struct {
	Position  mathpkg.Vec3
	Direction mathpkg.Vec3
	Height    mathpkg.Vec3

	PixelWidth  int
	PixelHeight int
}

// NewCamera creates a camera rendering pixelWidth x pixelHeight pixels.
// Height need not be unit length or perpendicular to direction, but must
// not be parallel to it.
func NewCamera(position, direction, height mathpkg.Vec3, pixelWidth, pixelHeight int) *Camera {
	return &Camera{
		Position:    position,
		Direction:   direction,
		Height:      height,
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
	}
}

// RightVector derives the horizontal basis vector: perpendicular to both
// Direction and Height, rescaled to Height's length so the horizontal
// field of view spans the same extent the height vector defines
// vertically. Recomputed on every call as a pure function of the two
// stored vectors. NaN if Direction and Height are parallel.
func (c *Camera) RightVector() mathpkg.Vec3 {
	w := c.Direction.Cross(c.Height)
	return w.Divide(w.Length()).Multiply(c.Height.Length())
}

// Ray maps a pixel coordinate to a world-space ray from the camera
// position. The first coordinate offsets the direction along the stored
// height vector and the second along the derived right vector; callers
// must pass coordinates in the order the scene expects. Ray directions
// are not normalized and vary slightly in length across pixels.
func (c *Camera) Ray(x, y int) mathpkg.Ray {
	verticalOffset := float64(x)/float64(c.PixelWidth) - 0.5
	horizontalOffset := float64(y)/float64(c.PixelHeight) - 0.5

	direction := c.Direction.
		Add(c.Height.Multiply(verticalOffset)).
		Add(c.RightVector().Multiply(horizontalOffset))

	return mathpkg.NewRay(c.Position, direction)
}
