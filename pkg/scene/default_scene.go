package scene

import (
	"github.com/rfry/go-sphere-raytracer/pkg/core"
	"github.com/rfry/go-sphere-raytracer/pkg/geometry"
	"github.com/rfry/go-sphere-raytracer/pkg/material"
)

// Sky gradient colors shared by the built-in scenes
var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// NewDefaultScene creates the default scene: a large diffuse ground sphere
// with a diffuse, a glass and a metal sphere resting on it
func NewDefaultScene() *Scene {
	// Materials are shared references; a single material may back any
	// number of spheres
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s := NewScene(skyBlue, skyWhite)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100.0, lambertianGround),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
	)
	return s
}

// NewSingleSphereScene creates a minimal scene with one grey diffuse
// sphere in front of the camera, useful for smoke tests
func NewSingleSphereScene() *Scene {
	lambertianGrey := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s := NewScene(skyBlue, skyWhite)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianGrey))
	return s
}
