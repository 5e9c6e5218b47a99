//go:build raylib

package render3d

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"stalagmite/internal/render"
	"stalagmite/internal/scene"
)

// CubeSize is the edge length of one cell cube.
const CubeSize = 0.6

// Painter draws frames through a fixed perspective camera.
type Painter struct {
	camera rl.Camera3D
	wires  bool
}

// NewPainter returns a painter with the camera placed in front of the stack,
// slightly below its top, looking along -Z.
func NewPainter() *Painter {
	return &Painter{
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, -5, 32),
			Target:     rl.NewVector3(0, -5, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       75,
			Projection: rl.CameraPerspective,
		},
	}
}

// ToggleWires switches cube outlines on the live layer.
func (p *Painter) ToggleWires() { p.wires = !p.wires }

// Draw paints frame in 3D mode. It must be called between rl.BeginDrawing
// and rl.EndDrawing.
func (p *Painter) Draw(frame scene.Frame) {
	rl.BeginMode3D(p.camera)
	for _, px := range frame.Proxies {
		pos := rl.NewVector3(float32(px.X), float32(px.Y), float32(px.Z))
		c := render.DepthColor(px.Depth, frame.MaxDepth)
		rl.DrawCube(pos, CubeSize, CubeSize, CubeSize, rl.NewColor(c.R, c.G, c.B, c.A))
		if p.wires && px.Depth == 0 {
			rl.DrawCubeWires(pos, CubeSize, CubeSize, CubeSize, rl.DarkGray)
		}
	}
	rl.EndMode3D()
}
