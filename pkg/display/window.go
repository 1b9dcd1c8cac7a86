// Package display shows a render in a desktop window.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hukka/go-weekend-raytracer/pkg/renderer"
)

// Run opens a window displaying the raytracer's output and blocks until
// the window is closed.
func Run(rt *renderer.Raytracer) error {
	g := &game{rt: rt}
	ebiten.SetWindowTitle("Raytracing in one weekend")
	ebiten.SetWindowSize(rt.Width()*2, rt.Height()*2)
	return ebiten.RunGame(g)
}

type game struct {
	rt    *renderer.Raytracer
	frame *ebiten.Image
}

func (g *game) Update() error {
	return nil
}

// Draw re-evaluates every pixel on each redraw; frames are independent
// and nothing is cached between them.
func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.rt.Width(), g.rt.Height())
	}
	g.frame.WritePixels(g.rt.Render().Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.rt.Width(), g.rt.Height()
}
