// Package render rasterizes a progress bar snapshot onto terminal cells.
//
// Each cell holds two vertically stacked pixels drawn with half-block glyphs,
// so one pixel is roughly square on common terminal fonts.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pablasso/fillbar/internal/palette"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

type textCell struct {
	r  rune
	fg colorful.Color
}

// Canvas is a grid of optional pixel colors plus a text overlay in cell
// coordinates.
type Canvas struct {
	Cols, Rows int
	// Width and Height are in pixels. Height is 2*Rows.
	Width, Height int

	pix  []colorful.Color
	set  []bool
	text map[int]textCell
}

// NewCanvas creates an empty canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	n := cols * rows * 2
	return &Canvas{
		Cols:   cols,
		Rows:   rows,
		Width:  cols,
		Height: rows * 2,
		pix:    make([]colorful.Color, n),
		set:    make([]bool, n),
		text:   map[int]textCell{},
	}
}

// Set paints pixel (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, col colorful.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := y*c.Width + x
	c.pix[i] = col
	c.set[i] = true
}

// At returns the color of pixel (x, y) and whether it was painted.
func (c *Canvas) At(x, y int) (colorful.Color, bool) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return colorful.Color{}, false
	}
	i := y*c.Width + x
	return c.pix[i], c.set[i]
}

// PutText writes s starting at cell (col, row), clipped to the canvas.
func (c *Canvas) PutText(col, row int, s string, fg colorful.Color) {
	if row < 0 || row >= c.Rows {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 || x >= c.Cols {
			continue
		}
		c.text[row*c.Cols+x] = textCell{r: r, fg: fg}
	}
}

// TextAt returns the overlay rune at cell (col, row).
func (c *Canvas) TextAt(col, row int) (rune, bool) {
	t, ok := c.text[row*c.Cols+col]
	return t.r, ok
}

type cellStyle struct {
	fg, bg       colorful.Color
	hasFg, hasBg bool
	bold         bool
}

func (s cellStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.bold)
	if s.hasFg {
		st = st.Foreground(palette.Lip(s.fg))
	}
	if s.hasBg {
		st = st.Background(palette.Lip(s.bg))
	}
	return st
}

func (c *Canvas) cell(col, row int) (string, cellStyle) {
	top, topOK := c.At(col, row*2)
	bot, botOK := c.At(col, row*2+1)

	if t, ok := c.text[row*c.Cols+col]; ok {
		st := cellStyle{fg: t.fg, hasFg: true, bold: true}
		switch {
		case topOK:
			st.bg, st.hasBg = top, true
		case botOK:
			st.bg, st.hasBg = bot, true
		}
		return string(t.r), st
	}

	switch {
	case topOK && botOK:
		return upperHalf, cellStyle{fg: top, hasFg: true, bg: bot, hasBg: true}
	case topOK:
		return upperHalf, cellStyle{fg: top, hasFg: true}
	case botOK:
		return lowerHalf, cellStyle{fg: bot, hasFg: true}
	}
	return " ", cellStyle{}
}

// String renders the canvas with lipgloss, one line per row. Adjacent cells
// sharing a style are rendered together.
func (c *Canvas) String() string {
	lines := make([]string, c.Rows)
	for row := 0; row < c.Rows; row++ {
		var line strings.Builder
		var run strings.Builder
		var runStyle cellStyle
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == (cellStyle{}) {
				line.WriteString(run.String())
			} else {
				line.WriteString(runStyle.style().Render(run.String()))
			}
			run.Reset()
		}

		for col := 0; col < c.Cols; col++ {
			glyph, st := c.cell(col, row)
			if st != runStyle {
				flush()
				runStyle = st
			}
			run.WriteString(glyph)
		}
		flush()
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}
