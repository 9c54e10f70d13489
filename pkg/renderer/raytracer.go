package renderer

import (
	"math"
	"math/rand"

	"github.com/rfry/go-sphere-raytracer/pkg/core"
)

// Shadow-acne epsilon: hits closer than this are floating-point
// self-intersections and are ignored
const tMinEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer renders a scene by recursive Monte Carlo ray tracing
type Raytracer struct {
	scene  Scene
	camera *Camera
	width  int
	height int
	config SamplingConfig
	random *rand.Rand
	logger core.Logger
}

// NewRaytracer creates a new raytracer with a fixed default seed
func NewRaytracer(scene Scene, camera *Camera, width, height int, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		random: rand.New(rand.NewSource(42)), // Deterministic for testing
		logger: logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSeed reseeds the sampler used for pixel jitter and scattering
func (rt *Raytracer) SetSeed(seed int64) {
	rt.random = rand.New(rand.NewSource(seed))
}

// backgroundGradient returns the sky color for a ray that hit nothing
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.BackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the color for a given ray, recursing through material
// scattering. Depth strictly decreases each call, so the recursion is
// guaranteed to terminate.
func (rt *Raytracer) rayColor(r core.Ray, depth int) core.Vec3 {
	// Ray bounce limit reached, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.Hit(r, tMinEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1))
}

// vec3ToPixel converts a linear [0,1] color to a display pixel: gamma-2
// correction by square root, clamp, then truncating byte conversion
func vec3ToPixel(colorVec core.Vec3) Pixel {
	corrected := colorVec.Clamp(0.0, 1.0).Sqrt()
	return Pixel{
		R: uint8(255 * corrected.X),
		G: uint8(255 * corrected.Y),
		B: uint8(255 * corrected.Z),
	}
}

// RenderPass renders the scene with multi-sampling and returns an image
func (rt *Raytracer) RenderPass() *Image {
	rt.logger.Printf("Rendering %dx%d image, %d samples per pixel, max depth %d\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	img := NewImage(rt.width, rt.height)

	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			// Accumulate color from jittered samples within the pixel footprint
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				u := (float64(i) + rt.random.Float64()) / float64(rt.width)
				v := (float64(j) + rt.random.Float64()) / float64(rt.height)

				ray := rt.camera.GetRay(u, v)
				colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth))
			}

			// Average the accumulated samples
			colorVec := colorAccum.Divide(float64(rt.config.SamplesPerPixel))

			// Flip y so image row 0 is the top visual row
			img.Set(i, rt.height-1-j, vec3ToPixel(colorVec))
		}
	}

	return img
}
