package scene

import (
	"math"
	"testing"

	"github.com/rfry/go-sphere-raytracer/pkg/core"
	"github.com/rfry/go-sphere-raytracer/pkg/geometry"
	"github.com/rfry/go-sphere-raytracer/pkg/material"
)

func greySphere(center core.Vec3, radius float64) *geometry.Sphere {
	return geometry.NewSphere(center, radius, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
}

func TestScene_HitReturnsNearest(t *testing.T) {
	near := greySphere(core.NewVec3(0, 0, -2), 0.5)
	far := greySphere(core.NewVec3(0, 0, -5), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name   string
		shapes []core.Shape
	}{
		{"Near sphere first", []core.Shape{near, far}},
		{"Far sphere first", []core.Shape{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
			s.Add(tt.shapes...)

			hit, isHit := s.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected a hit")
			}

			// Insertion order must not change the result
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest hit at t = 1.5, got %v", hit.T)
			}
		})
	}
}

func TestScene_HitEmptyScene(t *testing.T) {
	s := NewScene(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := s.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected no hit in an empty scene, got t = %v", hit.T)
	}
}

func TestScene_HitRespectsInterval(t *testing.T) {
	s := NewScene(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	s.Add(greySphere(core.NewVec3(0, 0, -2), 0.5))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Upper bound in front of the sphere excludes both roots
	if hit, isHit := s.Hit(ray, 0.001, 1.0); isHit {
		t.Errorf("Expected no hit with tMax = 1.0, got t = %v", hit.T)
	}
}

func TestScene_BackgroundColors(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1, 1, 1)
	s := NewScene(top, bottom)

	gotTop, gotBottom := s.BackgroundColors()
	if gotTop != top || gotBottom != bottom {
		t.Errorf("Expected (%v, %v), got (%v, %v)", top, bottom, gotTop, gotBottom)
	}
}

func TestBuiltInScenes(t *testing.T) {
	tests := []struct {
		name           string
		scene          *Scene
		expectedShapes int
	}{
		{"Default scene", NewDefaultScene(), 4},
		{"Single sphere scene", NewSingleSphereScene(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.scene.Shapes); got != tt.expectedShapes {
				t.Errorf("Expected %d shapes, got %d", tt.expectedShapes, got)
			}

			// A ray at the central sphere must hit in every built-in scene
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
			if _, isHit := tt.scene.Hit(ray, 0.001, math.Inf(1)); !isHit {
				t.Error("Expected the central sphere to be hit")
			}
		})
	}
}
