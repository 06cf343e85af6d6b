// Command raytrace is the entry point for the ray tracer, grounded on
// grinder's cmd/render/main.go (flag-parsed config, -fb live-preview switch
// via ebiten.RunGame, headless PNG save) and cmd/render_headless/main.go
// (the pure-headless path with no ebiten dependency at all).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"raytracer/internal/renderer"
	"raytracer/internal/scene"
	"raytracer/internal/uiapp"
)

func main() {
	width := flag.Int("width", 640, "framebuffer width")
	height := flag.Int("height", 480, "framebuffer height")
	sceneIndex := flag.Int("scene", 0, "index into the scene catalog to start on")
	meshDir := flag.String("meshdir", "testdata", "directory containing OBJ mesh assets")
	liveWindow := flag.Bool("fb", false, "open a live ebiten preview window instead of rendering headless")
	output := flag.String("o", "render.png", "output PNG path in headless mode")
	flag.Parse()

	catalog := scene.Catalog(*meshDir)
	if *sceneIndex < 0 || *sceneIndex >= len(catalog) {
		fmt.Printf("scene index %d out of range [0,%d)\n", *sceneIndex, len(catalog))
		os.Exit(1)
	}

	if *liveWindow {
		runLive(*width, *height, catalog, *sceneIndex)
		return
	}
	runHeadless(*width, *height, catalog, *sceneIndex, *output)
}

func runHeadless(width, height int, catalog []func() (*scene.Scene, error), sceneIndex int, output string) {
	s, err := catalog[sceneIndex]()
	if err != nil {
		log.Fatalf("raytrace: load scene: %v", err)
	}

	r := renderer.New(width, height)
	fmt.Println("Rendering...")
	if err := r.Render(s); err != nil {
		log.Fatalf("raytrace: render: %v", err)
	}

	if err := r.SaveBufferToImage(output); err != nil {
		log.Fatalf("raytrace: save image: %v", err)
	}
	fmt.Printf("Saved to %s\n", output)
}

func runLive(width, height int, catalog []func() (*scene.Scene, error), sceneIndex int) {
	rotated := make([]func() (*scene.Scene, error), 0, len(catalog))
	rotated = append(rotated, catalog[sceneIndex:]...)
	rotated = append(rotated, catalog[:sceneIndex]...)
	game, err := uiapp.New(width, height, rotated)
	if err != nil {
		log.Fatalf("raytrace: load scene: %v", err)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Ray Tracer Live Preview")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("raytrace: ebiten: %v", err)
	}
}
