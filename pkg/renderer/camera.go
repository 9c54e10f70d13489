package renderer

import (
	"github.com/rfry/go-sphere-raytracer/pkg/core"
)

// CameraConfig holds pinhole camera parameters. The aspect ratio is
// implicitly ViewportWidth / ViewportHeight.
type CameraConfig struct {
	Origin         core.Vec3 // Camera position
	ViewportHeight float64   // World-space viewport height
	ViewportWidth  float64   // World-space viewport width
	FocalLength    float64   // Distance from origin to the viewport plane
}

// DefaultCameraConfig returns a camera at the origin looking down -z with
// a viewport of height 2 at focal length 1
func DefaultCameraConfig(aspectRatio float64) CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		ViewportHeight: 2.0,
		ViewportWidth:  2.0 * aspectRatio,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering using a pinhole projection
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera, precomputing the viewport extent vectors
// and the world-space lower-left viewport corner
func NewCamera(config CameraConfig) *Camera {
	horizontal := core.NewVec3(config.ViewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := config.Origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          config.Origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray through viewport coordinates (u, v) where
// 0 <= u,v <= 1, with (0,0) at the lower-left corner
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
