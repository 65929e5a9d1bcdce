package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/shanebenlolo/hypersphere/core"
)

// HUDRows is the strip at the bottom of the screen reserved for status
// text; renderers draw world content above it
const HUDRows = 2

type frameCell struct {
	ch    rune
	fg    core.RGB
	bg    core.RGB
	hasFG bool
	hasBG bool
}

// Frame owns the per-frame cell and depth buffers plus the projection
// for the frame. Depth-tested writes let renderers draw in any order
// within their pass: the nearest surface wins each cell
type Frame struct {
	W, H  int // full screen cells
	ViewH int // drawable rows above the HUD
	View  View

	cells []frameCell
	depth []float64
}

// NewFrame creates buffers for a w x h screen
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

// Resize reallocates the buffers for a new screen size
func (f *Frame) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	f.W, f.H = w, h
	f.ViewH = h - HUDRows
	if f.ViewH < 1 {
		f.ViewH = 1
	}
	f.cells = make([]frameCell, w*h)
	f.depth = make([]float64, w*h)
	f.Clear()
}

// Clear blanks every cell and resets the depth buffer
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = frameCell{}
		f.depth[i] = math.Inf(1)
	}
}

func (f *Frame) in(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// DepthAt reports the depth written at a cell, +Inf when untouched
func (f *Frame) DepthAt(x, y int) float64 {
	if !f.in(x, y) {
		return math.Inf(1)
	}
	return f.depth[y*f.W+x]
}

// SetSurface writes a shaded background cell if depth wins the depth
// test. A nearer surface replaces any glyph drawn behind it
func (f *Frame) SetSurface(x, y int, depth float64, bg core.RGB) bool {
	if !f.in(x, y) || y >= f.ViewH {
		return false
	}
	i := y*f.W + x
	if depth >= f.depth[i] {
		return false
	}
	f.depth[i] = depth
	f.cells[i] = frameCell{bg: bg, hasBG: true}
	return true
}

// SetGlyph writes a foreground glyph if depth wins the depth test,
// keeping whatever background the cell already holds
func (f *Frame) SetGlyph(x, y int, depth float64, ch rune, fg core.RGB) bool {
	if !f.in(x, y) || y >= f.ViewH {
		return false
	}
	i := y*f.W + x
	if depth >= f.depth[i] {
		return false
	}
	f.depth[i] = depth
	f.cells[i].ch = ch
	f.cells[i].fg = fg
	f.cells[i].hasFG = true
	return true
}

// WriteString draws HUD text with no depth test, clipped to the row
func (f *Frame) WriteString(x, y int, text string, fg, bg core.RGB) {
	for _, ch := range text {
		if !f.in(x, y) {
			return
		}
		i := y*f.W + x
		f.cells[i] = frameCell{ch: ch, fg: fg, bg: bg, hasFG: true, hasBG: true}
		x++
	}
}

// Flush pushes the cell buffer to the terminal. Show is left to the
// orchestrator so a frame flushes exactly once
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.cells[y*f.W+x]
			st := tcell.StyleDefault
			if c.hasBG {
				st = st.Background(tcell.NewRGBColor(int32(c.bg.R), int32(c.bg.G), int32(c.bg.B)))
			}
			if c.hasFG {
				st = st.Foreground(tcell.NewRGBColor(int32(c.fg.R), int32(c.fg.G), int32(c.fg.B)))
			}
			ch := c.ch
			if !c.hasFG || ch == 0 {
				ch = ' '
			}
			screen.SetContent(x, y, ch, nil, st)
		}
	}
}
