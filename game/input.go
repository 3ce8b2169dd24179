package game

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-variants/model"
	"github.com/sheikhrachel/go-gol-variants/rules"
)

var (
	ErrInvalidNumericInput    = errors.New("not a whole number")
	ErrInvalidGenerationCount = errors.New("generation count must be positive")
	ErrInvalidChoice          = errors.New("unrecognised choice")
	ErrInputClosed            = errors.New("input closed")
)

// lineReader hands out one trimmed line per prompt. Each read consumes the
// whole line, so a rejected answer never leaves tokens behind for the next prompt.
type lineReader struct {
	sc *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (r *lineReader) readLine() (string, error) {
	if r.sc.Scan() {
		return strings.TrimSpace(r.sc.Text()), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", errors.Wrap(err, "[readLine] failed to read input")
	}
	return "", errors.WithStack(ErrInputClosed)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumericInput, "%q", s)
	}
	return n, nil
}

// parseYesNo treats an empty answer as no. Both "y" and "s" (sim) mean yes.
func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n", "no", "nao", "não":
		return false, nil
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidChoice, "%q", s)
	}
}

// parseCoordinate reads a "row col" pair. done is true for the -1 -1 sentinel.
func parseCoordinate(s string) (p model.Point, done bool, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return model.Point{}, false, errors.Wrapf(ErrInvalidNumericInput, "want two numbers, got %q", s)
	}
	row, err := parseInt(fields[0])
	if err != nil {
		return model.Point{}, false, err
	}
	col, err := parseInt(fields[1])
	if err != nil {
		return model.Point{}, false, err
	}
	if row == -1 && col == -1 {
		return model.Point{}, true, nil
	}
	if !model.InBounds(row, col) {
		return model.Point{}, false, errors.Wrapf(model.ErrInvalidCoordinate, "(%d, %d)", row, col)
	}
	return model.Point{Row: row, Col: col}, false, nil
}

func parseRuleChoice(s string) (rules.RuleSet, error) {
	n, err := parseInt(s)
	if err != nil {
		return rules.Unset, err
	}
	return rules.FromIndex(n)
}

func parseGenerationCount(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidGenerationCount, "got %d", n)
	}
	return n, nil
}
