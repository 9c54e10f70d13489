package core

import "math/rand"

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter produces an attenuation and a scattered ray for an incoming
	// ray at a surface hit. Returns false if the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation, components in [0,1]
}

// Shape interface for objects that support ray intersection queries
type Shape interface {
	// Hit returns the nearest intersection with t in (tMin, tMax), if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
