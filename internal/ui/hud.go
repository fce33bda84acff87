//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"fernpond/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textFg    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonOn  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	labelOff  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD draws the parameter panel to the right of the fern view.
type HUD struct {
	target   Target
	editor   core.ParameterEditor
	width    int
	panel    *ebiten.Image
	title    string
	controls []control
	status   []string
}

// NewHUD builds a HUD of the given width. Controls are only shown when
// target is also a core.ParameterEditor.
func NewHUD(target Target, width int) *HUD {
	h := &HUD{target: target, width: max(width, 0), title: "Controls"}
	if name := target.Name(); name != "" {
		h.title = name + " controls"
	}
	if ed, ok := target.(core.ParameterEditor); ok {
		h.editor = ed
		h.controls = newControls(ed.ParameterControls(), h.width)
	}
	return h
}

// Update syncs the controls with the target and handles clicks. panelX is
// the screen x of the panel. It reports whether a parameter changed.
func (h *HUD) Update(panelX int) bool {
	if h == nil || h.width == 0 {
		return false
	}
	snap := h.target.Parameters()
	for i := range h.controls {
		h.controls[i].load(snap)
	}
	if h.editor == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	i, dir := hit(h.controls, image.Pt(x-panelX, y))
	if i < 0 {
		return false
	}
	return h.controls[i].apply(h.editor, dir)
}

// SetStatus replaces the lines drawn below the controls.
func (h *HUD) SetStatus(lines ...string) {
	if h != nil {
		h.status = lines
	}
}

// Draw paints the panel at offsetX, matching the scaled view height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width == 0 {
		return
	}
	height := h.target.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, titleY, textFg)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, titleY+statusGap, textDim)
	}
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelY
		text.Draw(h.panel, c.Label, face, panelPadding, y, textFg)
		v := c.text()
		fg := textFg
		if !c.known {
			fg = textDim
		}
		text.Draw(h.panel, v, face, c.minus.Min.X-buttonGap-text.BoundString(face, v).Dx(), y, fg)
		_, down := c.next(-1)
		_, up := c.next(1)
		h.button(c.minus, "-", down)
		h.button(c.plus, "+", up)
	}
	y := statusTop(len(h.controls))
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, textDim)
		y += statusLine
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonOn, textFg
	if !enabled {
		bg, fg = buttonOff, labelOff
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	text.Draw(h.panel, label, face, r.Min.X+(r.Dx()-b.Dx())/2, r.Min.Y+(r.Dy()+b.Dy())/2, fg)
}
