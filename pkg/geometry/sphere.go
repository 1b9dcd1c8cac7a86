package geometry

import (
	"math"

	mathpkg "github.com/hukka/go-weekend-raytracer/pkg/math"
)

// Sphere represents a sphere shape
type Sphere struct {
	Radius float64
	Center mathpkg.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center mathpkg.Vec3, radius float64) *Sphere {
	return &Sphere{
		Radius: radius,
		Center: center,
	}
}

// IntersectT returns the parametric distance to the nearest intersection
// of the ray with the sphere's surface at non-negative t, if one exists.
//
// A point P on the sphere satisfies (P−C)·(P−C) = r². Substituting the
// ray P(t) = O + tD gives the quadratic
//
//	(D·D)t² + 2(D·(O−C))t + (O−C)·(O−C) − r² = 0
//
// whose discriminant decides whether the ray misses (negative), grazes
// (zero) or passes through (positive) the sphere.
//
// The returned t is measured in units of the ray's direction vector, not
// world-space length; the direction is not assumed to be normalized.
func (s *Sphere) IntersectT(ray mathpkg.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients: at² + bt + c = 0.
	// a is strictly positive for any non-zero direction.
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	// Since a > 0, t1 <= t2 always, so a non-negative t1 is the nearest
	// forward hit. t1 == 0 (origin exactly on the surface) counts as a hit,
	// and so does a zero discriminant (tangent ray).
	t1 := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t1 >= 0 {
		return t1, true
	}

	// The near root is behind the origin; if the far root is in front, the
	// origin is inside the sphere and that is the valid forward hit.
	t2 := (-b + math.Sqrt(discriminant)) / (2 * a)
	if t2 > 0 {
		return t2, true
	}

	// Both roots negative: the sphere is entirely behind the ray
	return 0, false
}

// Intersect returns the world-space point of the nearest forward
// intersection, if one exists.
func (s *Sphere) Intersect(ray mathpkg.Ray) (mathpkg.Vec3, bool) {
	t, ok := s.IntersectT(ray)
	if !ok {
		return mathpkg.Vec3{}, false
	}
	return ray.At(t), true
}
