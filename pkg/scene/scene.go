package scene

import (
	"github.com/rfry/go-sphere-raytracer/pkg/core"
)

// Scene contains the objects to render and the sky gradient behind them.
// It is read-only for the duration of a render.
type Scene struct {
	Shapes      []core.Shape // Objects in the scene, in insertion order
	TopColor    core.Vec3    // Sky color straight up
	BottomColor core.Vec3    // Sky color straight down
}

// NewScene creates an empty scene with the given sky gradient colors
func NewScene(topColor, bottomColor core.Vec3) *Scene {
	return &Scene{
		TopColor:    topColor,
		BottomColor: bottomColor,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the closest intersection across all objects with t in
// (tMin, tMax). Each accepted hit shrinks the upper bound, so later
// objects are tested against a tighter interval and the globally nearest
// hit wins regardless of insertion order.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BackgroundColors returns the sky gradient's top and bottom colors
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
