// Package cli renders 2048 boards for terminal play.
package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"twenty48/twenty48"
)

type tileColor struct {
	fg, bg string
}

// The classic 2048 palette, keyed by tile value.
var tileColors = map[uint16]tileColor{
	2:    {"#776e65", "#eee4da"},
	4:    {"#776e65", "#ede0c8"},
	8:    {"#f9f6f2", "#f2b179"},
	16:   {"#f9f6f2", "#f59563"},
	32:   {"#f9f6f2", "#f67c5f"},
	64:   {"#f9f6f2", "#f65e3b"},
	128:  {"#f9f6f2", "#edcf72"},
	256:  {"#f9f6f2", "#edcc61"},
	512:  {"#f9f6f2", "#edc850"},
	1024: {"#f9f6f2", "#edc53f"},
	2048: {"#f9f6f2", "#edc22e"},
}

var emptyColor = tileColor{"#776e65", "#cdc1b4"}

// Renderer writes colored 2048 boards to a terminal. Rendering degrades
// with the output's color profile; termenv.Ascii yields plain text.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, options ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

// Render writes the score line and the board.
func (r *Renderer) Render(g *twenty48.Game) {
	fmt.Fprintf(r.out, "moves %d  score %.0f\n", g.Moves(), g.Reward())
	for row := 0; row < twenty48.Height; row++ {
		for col := 0; col < twenty48.Width; col++ {
			fmt.Fprint(r.out, r.cell(g.Tile(row, col)))
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) cell(value uint16) string {
	text := "      "
	if value != 0 {
		text = fmt.Sprintf(" %4d ", value)
	}

	colors, ok := tileColors[value]
	if !ok {
		colors = emptyColor
		if value > 2048 {
			colors = tileColors[2048]
		}
	}

	profile := r.out.ColorProfile()
	return r.out.String(text).
		Foreground(profile.Color(colors.fg)).
		Background(profile.Color(colors.bg)).
		String()
}
