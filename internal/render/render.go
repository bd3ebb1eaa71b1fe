// Package render draws cube faces for terminals.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/rubix"
)

// palette maps sticker colors to terminal colors.
var palette = map[rubix.FaceColor]lipgloss.Color{
	rubix.White:  lipgloss.Color("#FFFFFF"),
	rubix.Red:    lipgloss.Color("#C41E3A"),
	rubix.Green:  lipgloss.Color("#009E60"),
	rubix.Orange: lipgloss.Color("#FF5800"),
	rubix.Blue:   lipgloss.Color("#0051BA"),
	rubix.Yellow: lipgloss.Color("#FFD500"),
}

// Renderer turns faces into text. With Color off every sticker is its
// color letter; with Color on every sticker is Glyph on that color.
type Renderer struct {
	Glyph string
	Color bool

	styles map[rubix.FaceColor]lipgloss.Style
}

// New creates a renderer. An empty glyph draws two spaces per sticker.
func New(glyph string, color bool) *Renderer {
	if glyph == "" {
		glyph = "  "
	}
	r := &Renderer{
		Glyph:  glyph,
		Color:  color,
		styles: make(map[rubix.FaceColor]lipgloss.Style, len(palette)),
	}
	for c, col := range palette {
		r.styles[c] = lipgloss.NewStyle().Background(col).Foreground(lipgloss.Color("#000000"))
	}
	return r
}

// cellWidth is the printed width of one sticker.
func (r *Renderer) cellWidth() int {
	if r.Color {
		return lipgloss.Width(r.Glyph)
	}
	return 2
}

func (r *Renderer) cell(c rubix.FaceColor) string {
	if !r.Color {
		return c.String() + " "
	}
	return r.styles[c].Render(r.Glyph)
}

func (r *Renderer) row(f rubix.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(r.cell(f.Sticker(row, col)))
	}
	return b.String()
}

// Face draws a single face as three lines.
func (r *Renderer) Face(f rubix.Face) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(r.row(f, row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Cube draws the unfolded net: top above, left, front, right and back in
// a band, bottom below.
func (r *Renderer) Cube(c *rubix.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 3*r.cellWidth())

	top := c.View(rubix.OrientTop)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(r.row(top, row))
		b.WriteByte('\n')
	}

	sides := []rubix.Face{
		c.View(rubix.OrientLeft),
		c.View(rubix.OrientFront),
		c.View(rubix.OrientRight),
		c.View(rubix.OrientBack),
	}
	for row := 0; row < 3; row++ {
		for _, f := range sides {
			b.WriteString(r.row(f, row))
		}
		b.WriteByte('\n')
	}

	bottom := c.View(rubix.OrientBottom)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(r.row(bottom, row))
		b.WriteByte('\n')
	}

	return b.String()
}
