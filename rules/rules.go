package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRuleIndex = errors.New("rule index out of range")
	ErrUnknownRule      = errors.New("unknown rule")
)

// RuleSet selects how cells are born and survive between generations.
// The zero value is Unset, which never produces a living cell.
type RuleSet int

const (
	Unset RuleSet = iota
	Conway
	StableLife
	HighLife
)

// All returns the selectable rule sets in menu order
func All() []RuleSet {
	return []RuleSet{Conway, StableLife, HighLife}
}

// FromIndex returns the rule set at a 1-based menu position
func FromIndex(i int) (RuleSet, error) {
	all := All()
	if i < 1 || i > len(all) {
		return Unset, errors.Wrapf(ErrInvalidRuleIndex, "[FromIndex] %d not in 1..%d", i, len(all))
	}
	return all[i-1], nil
}

// Parse accepts either a menu index or a rule key such as "highlife"
func Parse(s string) (RuleSet, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return FromIndex(n)
	}
	for _, r := range All() {
		if strings.EqualFold(s, r.Key()) || strings.EqualFold(s, r.Name()) {
			return r, nil
		}
	}
	return Unset, errors.Wrapf(ErrUnknownRule, "[Parse] %q", s)
}

// Key is the short identifier used on the command line
func (r RuleSet) Key() string {
	switch r {
	case Conway:
		return "conway"
	case StableLife:
		return "stablelife"
	case HighLife:
		return "highlife"
	default:
		return "unset"
	}
}

// Name returns the human-readable rule name
func (r RuleSet) Name() string {
	switch r {
	case Conway:
		return "Conway Original"
	case StableLife:
		return "Stable Life"
	case HighLife:
		return "High Life"
	default:
		return "Unset"
	}
}

// Description explains the survive and birth conditions of the rule
func (r RuleSet) Description() string {
	switch r {
	case Conway:
		return "Rules:\n- Live cells survive with 2 or 3 neighbors\n- Dead cells with exactly 3 neighbors come alive\n- All other cells die or stay dead."
	case StableLife:
		return "Rules:\n- Live cells survive with 2 to 4 neighbors\n- Dead cells with 3 or 5 neighbors come alive\n- All other cells die or stay dead."
	case HighLife:
		return "Rules:\n- Live cells survive with 2 or 3 neighbors\n- Dead cells with 3 or 6 neighbors come alive\n- All other cells die or stay dead."
	default:
		return "No rule selected: every cell dies."
	}
}

func (r RuleSet) String() string {
	return r.Name()
}

/*
Transition applies the rule to a single cell.

	Conway:     survive {2,3},   birth {3}
	StableLife: survive {2,3,4}, birth {3,5}
	HighLife:   survive {2,3},   birth {3,6}

Every other combination, and any call on Unset, yields a dead cell.
*/
func (r RuleSet) Transition(alive bool, neighbors int) bool {
	switch r {
	case Conway:
		if alive {
			return neighbors == 2 || neighbors == 3
		}
		return neighbors == 3
	case StableLife:
		if alive {
			return neighbors >= 2 && neighbors <= 4
		}
		return neighbors == 3 || neighbors == 5
	case HighLife:
		if alive {
			return neighbors == 2 || neighbors == 3
		}
		return neighbors == 3 || neighbors == 6
	default:
		return false
	}
}

// Valid reports whether r is one of the selectable rule sets
func (r RuleSet) Valid() bool {
	return r >= Conway && r <= HighLife
}
