package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-variants/rules"
)

// constSource always returns the same value from IntN
type constSource int

func (c constSource) IntN(int) int { return int(c) }

func newGridWithRule(t *testing.T, r rules.RuleSet, cells ...Point) *Grid {
	t.Helper()
	g := NewGrid()
	require.NoError(t, g.SelectRule(r))
	for _, p := range cells {
		require.NoError(t, g.SeedCell(p.Row, p.Col))
	}
	return g
}

// bruteNeighbors counts neighbors by probing all eight offsets
func bruteNeighbors(g *Grid, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

func TestNewGridIsDead(t *testing.T) {
	g := NewGrid()
	assert.False(t, g.IsAnyAlive())
	assert.Zero(t, g.CountAlive())
	assert.Empty(t, g.Alive())
	assert.Equal(t, rules.Unset, g.Rule())
}

func TestAdvanceDeadGridStaysDead(t *testing.T) {
	for _, r := range rules.All() {
		g := newGridWithRule(t, r)
		require.NoError(t, g.Advance())
		assert.False(t, g.IsAnyAlive(), r.Key())
	}
}

func TestAdvanceRequiresRule(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.SeedCell(1, 1))
	before := g.Hash()

	err := g.Advance()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRuleNotSelected))
	assert.Equal(t, before, g.Hash())
}

func TestSelectRuleRejectsUnset(t *testing.T) {
	g := NewGrid()
	err := g.SelectRule(rules.Unset)
	assert.True(t, errors.Is(err, rules.ErrUnknownRule))
	err = g.SelectRule(rules.RuleSet(42))
	assert.True(t, errors.Is(err, rules.ErrUnknownRule))
	assert.Equal(t, rules.Unset, g.Rule())
}

func TestSeedCellBounds(t *testing.T) {
	g := NewGrid()
	for _, p := range []Point{{-1, 0}, {0, -1}, {Size, 0}, {0, Size}, {-1, -1}} {
		err := g.SeedCell(p.Row, p.Col)
		require.Error(t, err, "%v", p)
		assert.True(t, errors.Is(err, ErrInvalidCoordinate))
	}
	assert.False(t, g.IsAnyAlive())

	require.NoError(t, g.SeedCell(0, 0))
	require.NoError(t, g.SeedCell(Size-1, Size-1))
	assert.Equal(t, []Point{{0, 0}, {Size - 1, Size - 1}}, g.Alive())
}

func TestSeedRandom(t *testing.T) {
	g := NewGrid()
	g.SeedRandom(constSource(1))
	assert.Equal(t, Size*Size, g.CountAlive())

	g.SeedRandom(constSource(0))
	assert.Zero(t, g.CountAlive())

	a, b := NewGrid(), NewGrid()
	a.SeedRandom(rand.New(rand.NewPCG(7, 0)))
	b.SeedRandom(rand.New(rand.NewPCG(7, 0)))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Alive(), b.Alive())
}

func TestCountAliveNeighborsFullBoard(t *testing.T) {
	g := NewGrid()
	g.SeedRandom(constSource(1))

	cases := map[string]struct {
		p    Point
		want int
	}{
		"corner top-left":     {Point{0, 0}, 3},
		"corner bottom-right": {Point{Size - 1, Size - 1}, 3},
		"corner top-right":    {Point{0, Size - 1}, 3},
		"edge top":            {Point{0, 4}, 5},
		"edge left":           {Point{6, 0}, 5},
		"edge bottom":         {Point{Size - 1, 2}, 5},
		"interior":            {Point{4, 4}, 8},
	}
	for name, tc := range cases {
		assert.Equal(t, tc.want, g.CountAliveNeighbors(tc.p.Row, tc.p.Col), name)
	}
	assert.Zero(t, g.CountAliveNeighbors(-1, 3))
}

func TestCountAliveNeighborsMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 1))
	for range 20 {
		g := NewGrid()
		g.SeedRandom(rng)
		for row := range Size {
			for col := range Size {
				n := g.CountAliveNeighbors(row, col)
				require.GreaterOrEqual(t, n, 0)
				require.LessOrEqual(t, n, 8)
				require.Equal(t, bruteNeighbors(g, row, col), n, "(%d,%d)", row, col)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGridWithRule(t, rules.Conway, Point{4, 4}, Point{4, 5}, Point{4, 6})

	require.NoError(t, g.Advance())
	assert.Equal(t, []Point{{3, 5}, {4, 5}, {5, 5}}, g.Alive())

	require.NoError(t, g.Advance())
	assert.Equal(t, []Point{{4, 4}, {4, 5}, {4, 6}}, g.Alive())
}

func TestIsolatedCellDies(t *testing.T) {
	for _, r := range rules.All() {
		g := newGridWithRule(t, r, Point{5, 5})
		require.NoError(t, g.Advance())
		assert.False(t, g.IsAnyAlive(), r.Key())
	}
}

func TestFiveNeighborBirth(t *testing.T) {
	ring := []Point{{3, 3}, {3, 4}, {3, 5}, {4, 3}, {5, 3}}

	stable := newGridWithRule(t, rules.StableLife, ring...)
	require.Equal(t, 5, stable.CountAliveNeighbors(4, 4))
	require.NoError(t, stable.Advance())
	assert.Equal(t, Alive, stable.Get(4, 4))

	conway := newGridWithRule(t, rules.Conway, ring...)
	require.NoError(t, conway.Advance())
	assert.Equal(t, Dead, conway.Get(4, 4))
}

func TestSixNeighborBirthOnlyInHighLife(t *testing.T) {
	ring := []Point{{3, 3}, {3, 4}, {3, 5}, {5, 3}, {5, 4}, {5, 5}}

	high := newGridWithRule(t, rules.HighLife, ring...)
	require.NoError(t, high.Advance())
	assert.Equal(t, Alive, high.Get(4, 4))

	conway := newGridWithRule(t, rules.Conway, ring...)
	require.NoError(t, conway.Advance())
	assert.Equal(t, Dead, conway.Get(4, 4))
}

func TestAdvanceUsesSingleSnapshot(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 3))
	for _, r := range rules.All() {
		for range 10 {
			g := newGridWithRule(t, r)
			g.SeedRandom(rng)

			var want [Size][Size]Cell
			for row := range Size {
				for col := range Size {
					alive := bool(g.Get(row, col))
					want[row][col] = Cell(r.Transition(alive, bruteNeighbors(g, row, col)))
				}
			}

			require.NoError(t, g.Advance())
			for row := range Size {
				for col := range Size {
					require.Equal(t, want[row][col], g.Get(row, col), "%s (%d,%d)", r.Key(), row, col)
				}
			}
		}
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	g := NewGrid()
	g.SeedRandom(rand.New(rand.NewPCG(5, 5)))

	lines := g.Lines(DefaultGlyphs)
	count := g.CountAlive()
	anyAlive := g.IsAnyAlive()
	hash := g.Hash()

	for range 3 {
		assert.Equal(t, lines, g.Lines(DefaultGlyphs))
		assert.Equal(t, count, g.CountAlive())
		assert.Equal(t, anyAlive, g.IsAnyAlive())
		assert.Equal(t, hash, g.Hash())
	}
}

func TestHashDistinguishesBoards(t *testing.T) {
	a, b := NewGrid(), NewGrid()
	assert.Equal(t, a.Hash(), b.Hash())
	require.NoError(t, b.SeedCell(9, 9))
	assert.NotEqual(t, a.Hash(), b.Hash())
}
