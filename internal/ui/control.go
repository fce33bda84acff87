package ui

import (
	"image"
	"math"
	"strconv"

	"fernpond/internal/core"
)

// Target is the scene a HUD presents.
type Target interface {
	core.ParameterProvider
	Size() core.Size
}

const (
	panelPadding = 12
	rowHeight    = 36
	buttonSize   = 24
	buttonGap    = 6
	titleY       = panelPadding + 18
	rowsTop      = titleY + 14
	labelY       = 24
	statusGap    = 36
	statusLine   = 18
)

// control is one HUD row: a stepped parameter with -/+ buttons.
type control struct {
	core.ParameterControl
	value float64
	known bool

	top         int
	minus, plus image.Rectangle
}

func newControls(ctrls []core.ParameterControl, width int) []control {
	out := make([]control, len(ctrls))
	for i, c := range ctrls {
		top := rowsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		out[i] = control{ParameterControl: c, top: top, minus: minus, plus: plus}
	}
	return out
}

func (c *control) load(snap core.ParameterSnapshot) {
	p, ok := snap.Lookup(c.Key)
	if !ok {
		c.known = false
		return
	}
	c.value, c.known = p.Float()
}

func (c *control) step() float64 {
	switch {
	case c.Step > 0:
		return c.Step
	case c.Type == core.ParamTypeInt:
		return 1
	default:
		return 0.05
	}
}

// next returns the value one step in dir, clamped to the control range, and
// whether it differs from the current value.
func (c *control) next(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return c.value, false
	}
	v := c.value + float64(dir)*c.step()
	if c.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	v = math.Max(c.Min, math.Min(c.Max, v))
	return v, math.Abs(v-c.value) > 1e-9
}

// apply steps the control and pushes the value to ed.
func (c *control) apply(ed core.ParameterEditor, dir int) bool {
	v, ok := c.next(dir)
	if !ok {
		return false
	}
	if c.Type == core.ParamTypeInt {
		ok = ed.SetIntParameter(c.Key, int(v))
	} else {
		ok = ed.SetFloatParameter(c.Key, v)
	}
	if ok {
		c.value = v
	}
	return ok
}

func (c *control) text() string {
	if !c.known {
		return "--"
	}
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(c.value))
	}
	prec := 1
	switch s := c.step(); {
	case s < 0.001:
		prec = 4
	case s < 0.01:
		prec = 3
	case s < 0.1:
		prec = 2
	}
	return strconv.FormatFloat(c.value, 'f', prec, 64)
}

// hit finds the button under panel coordinate p. It returns the control index
// and direction, or -1.
func hit(ctrls []control, p image.Point) (int, int) {
	for i := range ctrls {
		switch {
		case p.In(ctrls[i].minus):
			return i, -1
		case p.In(ctrls[i].plus):
			return i, 1
		}
	}
	return -1, 0
}

func statusTop(rows int) int {
	return rowsTop + rows*rowHeight + statusGap
}
