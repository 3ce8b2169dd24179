package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-variants/rules"
)

// Size is the fixed width and height of the board
const Size = 10

var (
	ErrInvalidCoordinate = errors.New("coordinate outside the board")
	ErrRuleNotSelected   = errors.New("no rule selected")
)

// Cell is the state of a single board position
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// Point addresses a cell by zero-based row and column
type Point struct {
	Row, Col int
}

// RandomSource is satisfied by *rand.Rand from math/rand/v2
type RandomSource interface {
	IntN(n int) int
}

// Grid represents the game board and the rule used to advance it.
// The board is a fixed array, so a Grid is never partially allocated.
type Grid struct {
	cells [Size][Size]Cell
	rule  rules.RuleSet
}

// NewGrid creates a board with every cell dead and no rule selected
func NewGrid() *Grid {
	return &Grid{}
}

// SelectRule sets the rule used by Advance
func (g *Grid) SelectRule(r rules.RuleSet) error {
	if !r.Valid() {
		return errors.Wrapf(rules.ErrUnknownRule, "[SelectRule] rule set %d", int(r))
	}
	g.rule = r
	return nil
}

// Rule returns the selected rule, or rules.Unset
func (g *Grid) Rule() rules.RuleSet {
	return g.rule
}

// InBounds reports whether (row, col) lies on the board
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the state of a cell; positions off the board read as Dead
func (g *Grid) Get(row, col int) Cell {
	if !InBounds(row, col) {
		return Dead
	}
	return g.cells[row][col]
}

// SeedRandom sets every cell alive with probability one half
func (g *Grid) SeedRandom(rng RandomSource) {
	for row := range Size {
		for col := range Size {
			g.cells[row][col] = rng.IntN(2) == 1
		}
	}
}

// SeedCell marks a single cell alive
func (g *Grid) SeedCell(row, col int) error {
	if !InBounds(row, col) {
		return errors.Wrapf(ErrInvalidCoordinate, "[SeedCell] (%d, %d) with board size %d", row, col, Size)
	}
	g.cells[row][col] = Alive
	return nil
}

// CountAliveNeighbors counts living cells in the Moore neighborhood of (row, col).
// Positions beyond the edge are skipped; the board does not wrap.
func (g *Grid) CountAliveNeighbors(row, col int) int {
	if !InBounds(row, col) {
		return 0
	}
	return countNeighbors(&g.cells, row, col)
}

func countNeighbors(cells *[Size][Size]Cell, row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(Size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(Size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation from the current one and replaces it.
// Every neighbor count is taken from the unmodified current board.
func (g *Grid) Advance() error {
	if !g.rule.Valid() {
		return errors.Wrap(ErrRuleNotSelected, "[Advance]")
	}

	var next [Size][Size]Cell
	for row := range Size {
		for col := range Size {
			alive := bool(g.cells[row][col])
			next[row][col] = Cell(g.rule.Transition(alive, countNeighbors(&g.cells, row, col)))
		}
	}

	g.cells = next
	return nil
}

// IsAnyAlive reports whether at least one cell is alive
func (g *Grid) IsAnyAlive() bool {
	for row := range Size {
		for col := range Size {
			if g.cells[row][col] {
				return true
			}
		}
	}
	return false
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for row := range Size {
		for col := range Size {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Alive lists living cells in row-major order
func (g *Grid) Alive() []Point {
	var points []Point
	for row := range Size {
		for col := range Size {
			if g.cells[row][col] {
				points = append(points, Point{Row: row, Col: col})
			}
		}
	}
	return points
}

// Hash returns an MD5 digest of the board, used to spot repeating states
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range Size {
		for col := range Size {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
