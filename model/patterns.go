package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of cells to seed onto an empty board
type Pattern struct {
	Name  string
	Cells []Point
}

var patterns = map[string]Pattern{
	"blinker": {
		Name:  "blinker",
		Cells: []Point{{4, 4}, {4, 5}, {4, 6}},
	},
	"glider": {
		Name:  "glider",
		Cells: []Point{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"block": {
		Name:  "block",
		Cells: []Point{{4, 4}, {4, 5}, {5, 4}, {5, 5}},
	},
}

// PatternNames lists the available preset patterns alphabetically
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern finds a preset pattern by case-insensitive name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q, want one of %v", name, PatternNames())
	}
	return p, nil
}

// Place seeds every cell of the pattern
func (g *Grid) Place(p Pattern) error {
	for _, pt := range p.Cells {
		if err := g.SeedCell(pt.Row, pt.Col); err != nil {
			return errors.Wrapf(err, "[Place] pattern %s", p.Name)
		}
	}
	return nil
}
