package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rfry/go-sphere-raytracer/pkg/renderer"
	"github.com/rfry/go-sphere-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'single-sphere'")
	outPath := flag.String("out", "render.ppm", "Output file path (.ppm or .png)")
	width := flag.Int("width", 711, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	seed := flag.Int64("seed", 42, "Random seed for pixel jitter and scattering")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default       - Diffuse ground with diffuse, glass and metal spheres")
		fmt.Println("  single-sphere - One grey diffuse sphere against the sky gradient")
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	aspectRatio := float64(*width) / float64(*height)
	camera := renderer.NewCamera(renderer.DefaultCameraConfig(aspectRatio))

	raytracer := renderer.NewRaytracer(selectedScene, camera, *width, *height, renderer.NewDefaultLogger())
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})
	raytracer.SetSeed(*seed)

	startTime := time.Now()
	img := raytracer.RenderPass()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := writeImage(*outPath, img); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *outPath)
}

// createScene builds a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "single-sphere":
		return scene.NewSingleSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q (see -help for available scenes)", sceneType)
	}
}

// writeImage saves the image to path, choosing the encoder by extension:
// .ppm writes the plain-text P3 format, .png encodes with image/png
func writeImage(path string, img *renderer.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(file, img.ToRGBA())
	case ".ppm", "":
		return img.WritePPM(file)
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}
