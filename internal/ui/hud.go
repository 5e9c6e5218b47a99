//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"stalagmite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ParameterProvider exposes the values shown by the HUD.
type ParameterProvider interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// Status is the run state shown beneath the parameters.
type Status struct {
	Paused bool
	Ticks  uint64
	TPS    int
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	src        ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     Status
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(src ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width, title: buildTitle(src)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update(status Status) {
	if h == nil || h.src == nil {
		return
	}
	h.snapshot = h.src.Parameters()
	h.status = status
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(src ParameterProvider) string {
	if src == nil || src.Name() == "" {
		return "Parameters"
	}
	name := src.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += groupSpacing

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}

	state := "running"
	if h.status.Paused {
		state = "paused"
	}
	text.Draw(h.panel, fmt.Sprintf("%s  tick %d @ %d/s", state, h.status.Ticks, h.status.TPS), face, panelPadding, y, groupColor)
	y += groupSpacing
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, hintColor)
		y += lineHeight
	}
}

var keyHelp = []string{
	"Space  pause/resume",
	"N      single tick",
	"R      reset",
	"S      reseed",
	"C      copy config",
	"Q/Esc  quit",
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 160, G: 170, B: 200, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	hintColor  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 26
	indent         = 8
	headerBaseline = 18
)
