package model

import (
	"io"
	"iter"
	"os/exec"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// Glyphs are the strings printed for living and dead cells
type Glyphs struct {
	Alive string
	Dead  string
}

// DefaultGlyphs matches the classic console board: "O" alive, "." dead
var DefaultGlyphs = Glyphs{Alive: "O", Dead: "."}

// Render yields one space-separated line per row of the board as it is now.
// The sequence can be ranged over any number of times.
func (g *Grid) Render(glyphs Glyphs) iter.Seq[string] {
	cells := g.cells
	return func(yield func(string) bool) {
		parts := make([]string, Size)
		for row := range Size {
			for col := range Size {
				if cells[row][col] {
					parts[col] = glyphs.Alive
				} else {
					parts[col] = glyphs.Dead
				}
			}
			if !yield(strings.Join(parts, " ")) {
				return
			}
		}
	}
}

// Lines collects Render into a slice
func (g *Grid) Lines(glyphs Glyphs) []string {
	return slices.Collect(g.Render(glyphs))
}

// TerminalRenderer writes boards to a terminal or any other writer
type TerminalRenderer struct {
	Out    io.Writer
	Glyphs Glyphs
}

// Display renders the grid followed by a blank line
func (r *TerminalRenderer) Display(g *Grid) error {
	var b strings.Builder
	for line := range g.Render(r.Glyphs) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(r.Out, b.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "[Clear] failed to run %s", clearCmd)
	}
	return nil
}
