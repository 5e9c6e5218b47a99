package render

import (
	"math"

	"stalagmite/internal/scene"
)

var isoCos = math.Cos(math.Pi / 6)

// Isometric maps scene space to screen pixels. Scene Y points up; screen Y
// points down.
type Isometric struct {
	Unit    float64 // Pixels per scene unit
	OriginX float64
	OriginY float64
}

// Project returns the screen position of a scene point.
func (iso Isometric) Project(x, y, z float64) (sx, sy float64) {
	sx = iso.OriginX + (x-z)*isoCos*iso.Unit
	sy = iso.OriginY + (x+z)*0.5*iso.Unit - y*iso.Unit
	return sx, sy
}

// ProjectProxy projects the centre of a proxy.
func (iso Isometric) ProjectProxy(p scene.Proxy) (sx, sy float64) {
	return iso.Project(p.X, p.Y, p.Z)
}
