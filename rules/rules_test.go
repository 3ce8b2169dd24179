package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	table := map[RuleSet]struct {
		survive []int
		birth   []int
	}{
		Conway:     {survive: []int{2, 3}, birth: []int{3}},
		StableLife: {survive: []int{2, 3, 4}, birth: []int{3, 5}},
		HighLife:   {survive: []int{2, 3}, birth: []int{3, 6}},
	}

	contains := func(set []int, n int) bool {
		for _, v := range set {
			if v == n {
				return true
			}
		}
		return false
	}

	for rule, want := range table {
		t.Run(rule.Key(), func(t *testing.T) {
			for n := 0; n <= 8; n++ {
				assert.Equal(t, contains(want.survive, n), rule.Transition(true, n), "alive with %d neighbors", n)
				assert.Equal(t, contains(want.birth, n), rule.Transition(false, n), "dead with %d neighbors", n)
			}
		})
	}
}

func TestUnsetNeverBirths(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.False(t, Unset.Transition(true, n))
		assert.False(t, Unset.Transition(false, n))
	}
	assert.False(t, Unset.Valid())
}

func TestIsolationKillsUnderEveryRule(t *testing.T) {
	for _, r := range All() {
		assert.False(t, r.Transition(true, 0), r.Key())
	}
}

func TestFromIndex(t *testing.T) {
	r, err := FromIndex(1)
	require.NoError(t, err)
	assert.Equal(t, Conway, r)

	r, err = FromIndex(3)
	require.NoError(t, err)
	assert.Equal(t, HighLife, r)

	for _, bad := range []int{0, 4, -1} {
		_, err = FromIndex(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRuleIndex))
	}
}

func TestParse(t *testing.T) {
	cases := map[string]RuleSet{
		"conway":     Conway,
		"StableLife": StableLife,
		" highlife ": HighLife,
		"High Life":  HighLife,
		"2":          StableLife,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("seeds")
	assert.True(t, errors.Is(err, ErrUnknownRule))

	_, err = Parse("9")
	assert.True(t, errors.Is(err, ErrInvalidRuleIndex))
}

func TestNamesAndDescriptions(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range All() {
		assert.True(t, r.Valid())
		assert.NotEmpty(t, r.Description())
		assert.False(t, seen[r.Name()], "duplicate name %s", r.Name())
		seen[r.Name()] = true
	}
	assert.Equal(t, "High Life", HighLife.String())
}
