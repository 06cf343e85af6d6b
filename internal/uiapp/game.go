// Package uiapp wires a live-preview window around Renderer/Scene using
// ebiten's Game interface, grounded on original_source/project/src/main.cpp's
// SDL2 event pump and window/surface setup, adapted to ebiten's
// Update/Draw/Layout contract (the teacher repo has no windowing layer of
// its own to generalize from; ebiten's own examples supply the Game idiom).
package uiapp

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"raytracer/internal/input"
	"raytracer/internal/renderer"
	"raytracer/internal/scene"
)

// Game implements ebiten.Game, owning the active scene, the renderer, the
// scene catalog to cycle through, and the input state Camera.Update reads.
type Game struct {
	renderer *renderer.Renderer
	catalog  []func() (*scene.Scene, error)
	index    int
	active   *scene.Scene

	in State

	lastFrame time.Time
}

// State is input.State, the input state the Game polls each frame; aliased
// so callers don't need to import internal/input directly.
type State = input.State

// New constructs a Game for the given framebuffer size and scene catalog,
// loading the first scene eagerly the way original_source's main() loads
// Scene_W1 before entering its event loop.
func New(width, height int, catalog []func() (*scene.Scene, error)) (*Game, error) {
	g := &Game{
		renderer: renderer.New(width, height),
		catalog:  catalog,
	}
	if err := g.loadScene(0); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) loadScene(index int) error {
	s, err := g.catalog[index]()
	if err != nil {
		return fmt.Errorf("uiapp: load scene %d: %w", index, err)
	}
	g.index = index
	g.active = s
	return nil
}

// nextScene and prevScene wrap around the catalog, matching
// original_source's ShowFollowingScene/ShowPreviousScene.
func (g *Game) nextScene() {
	if err := g.loadScene((g.index + 1) % len(g.catalog)); err != nil {
		log.Printf("uiapp: %v", err)
	}
}

func (g *Game) prevScene() {
	i := g.index - 1
	if i < 0 {
		i = len(g.catalog) - 1
	}
	if err := g.loadScene(i); err != nil {
		log.Printf("uiapp: %v", err)
	}
}

// Update polls input, advances the active scene's camera/animation, and
// dispatches the edge-triggered key bindings spec.md §6 and
// original_source/main.cpp's SDL_KEYUP switch describe:
//
//	X            request screenshot
//	F2           toggle shadows
//	F3           cycle lighting mode
//	Left/Right   previous/next scene in the catalog
//	Up/Down      MSAA x4 / MSAA /4
func (g *Game) Update() error {
	now := time.Now()
	dt := float32(0)
	if !g.lastFrame.IsZero() {
		dt = float32(now.Sub(g.lastFrame).Seconds())
	}
	g.lastFrame = now

	g.in.Poll()
	g.active.Update(dt, &g.in)

	if input.KeyJustReleased(ebiten.KeyX) {
		if err := g.SaveScreenshot(fmt.Sprintf("screenshot-%d.png", now.Unix())); err != nil {
			fmt.Printf("uiapp: screenshot: %v\n", err)
		}
	}
	if input.KeyJustReleased(ebiten.KeyF2) {
		g.renderer.ToggleShadows()
	}
	if input.KeyJustReleased(ebiten.KeyF3) {
		g.renderer.CycleLightingMode()
	}
	if input.KeyJustReleased(ebiten.KeyLeft) {
		g.prevScene()
	}
	if input.KeyJustReleased(ebiten.KeyRight) {
		g.nextScene()
	}
	if input.KeyJustReleased(ebiten.KeyUp) {
		g.renderer.IncreaseMSAA()
	}
	if input.KeyJustReleased(ebiten.KeyDown) {
		g.renderer.DecreaseMSAA()
	}

	return nil
}

// Draw renders the active scene and blits the result into screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderer.Render(g.active); err != nil {
		log.Printf("uiapp: render: %v", err)
		return
	}
	screen.WritePixels(g.renderer.PixelBytes())
}

// Layout reports the renderer's fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Width, g.renderer.Height
}

// SaveScreenshot delegates to the renderer's current buffer, matching the
// screenshot save original_source wires to a save dialog; Update calls it
// when X is released.
func (g *Game) SaveScreenshot(path string) error {
	return g.renderer.SaveBufferToImage(path)
}
