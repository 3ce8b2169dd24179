package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/sheikhrachel/go-gol-variants/model"
	"github.com/sheikhrachel/go-gol-variants/rules"
	"github.com/sheikhrachel/go-gol-variants/utils"
)

// SeedMode decides how the initial board is populated
type SeedMode int

const (
	SeedAsk SeedMode = iota
	SeedRandom
	SeedManual
	SeedPattern
)

func (m SeedMode) String() string {
	switch m {
	case SeedRandom:
		return "random"
	case SeedManual:
		return "manual"
	case SeedPattern:
		return "pattern"
	default:
		return "ask"
	}
}

// Reason explains why a run stopped
type Reason string

const (
	ReasonNoLiveCells Reason = "no_live_cells"
	ReasonExtinct     Reason = "extinct"
	ReasonLimit       Reason = "generation_limit"
	ReasonInterrupted Reason = "interrupted"
)

// Options pre-answer prompts. Zero values mean the user is asked.
type Options struct {
	Seeding     SeedMode
	Pattern     model.Pattern // used with SeedPattern
	Rule        rules.RuleSet
	Generations int
	// WaitForStart pauses for ENTER before the first generation
	WaitForStart bool
	// Source overrides the random source built from the configured seed
	Source model.RandomSource
}

// Result summarises a finished run
type Result struct {
	Generations int
	Alive       int
	Reason      Reason
	Stats       *utils.Stats
}

// Session drives one simulation from seeding to the final generation
type Session struct {
	in       *lineReader
	out      io.Writer
	p        *message.Printer
	logger   *slog.Logger
	cfg      utils.Config
	opts     Options
	grid     *model.Grid
	renderer *model.TerminalRenderer
	history  *model.History
	now      func() time.Time
}

// NewSession wires a session to its input, output and logger
func NewSession(in io.Reader, out io.Writer, cfg utils.Config, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		in:     newLineReader(in),
		out:    out,
		p:      newPrinter(cfg.Language),
		logger: logger,
		cfg:    cfg,
		opts:   opts,
		grid:   model.NewGrid(),
		renderer: &model.TerminalRenderer{
			Out:    out,
			Glyphs: model.Glyphs{Alive: cfg.AliveGlyph, Dead: cfg.DeadGlyph},
		},
		history: model.NewHistory(cfg.HistoryDepth),
		now:     time.Now,
	}
}

// Grid exposes the board, mainly for inspection after Run
func (s *Session) Grid() *model.Grid {
	return s.grid
}

// Run seeds the board, selects the rule and advances until the generation
// limit is reached, every cell has died, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (Result, error) {
	stats := utils.NewStats(s.now())
	result := Result{Stats: stats}

	if err := s.seed(); err != nil {
		return result, err
	}
	if err := s.selectRule(); err != nil {
		return result, err
	}

	s.say(msgInitialBoard)
	if err := s.renderer.Display(s.grid); err != nil {
		return result, err
	}

	if !s.grid.IsAnyAlive() {
		s.say(msgNoLiveCells)
		result.Reason = ReasonNoLiveCells
		s.logger.Info("run finished", "reason", result.Reason, "generations", 0)
		return result, nil
	}

	limit, err := s.generationLimit()
	if err != nil {
		return result, err
	}
	if s.opts.WaitForStart {
		s.say(msgPressEnter)
		if _, err = s.in.readLine(); err != nil && !errors.Is(err, ErrInputClosed) {
			return result, err
		}
	}

	s.logger.Info("simulation starting",
		"rule", s.grid.Rule().Key(),
		"generations", limit,
		"alive", s.grid.CountAlive(),
	)
	s.history.Record(s.grid.Hash())
	stats.Update(0, s.grid.CountAlive(), 0)

	result.Reason = ReasonLimit
	for gen := 1; gen <= limit; gen++ {
		if ctx.Err() != nil {
			result.Reason = ReasonInterrupted
			break
		}

		extinct, err := s.step(gen, stats)
		if err != nil {
			return result, err
		}
		result.Generations = gen
		if extinct {
			result.Reason = ReasonExtinct
			break
		}

		if gen < limit {
			if err = sleep(ctx, s.cfg.Delay); err != nil {
				result.Reason = ReasonInterrupted
				break
			}
		}
	}

	switch result.Reason {
	case ReasonExtinct:
		s.say(msgAllDead)
	case ReasonInterrupted:
		s.say(msgInterrupted)
	default:
		s.say(msgLimitReached, limit)
	}
	result.Alive = s.grid.CountAlive()
	s.say(msgSummary, result.Generations, stats.PeakPopulation, stats.AveragePopulation, stats.Runtime(s.now()).Seconds())

	s.logger.Info("run finished",
		"reason", result.Reason,
		"generations", result.Generations,
		"alive", result.Alive,
		"peak", stats.PeakPopulation,
	)
	return result, nil
}

// step prints the population, advances one generation and shows the board.
// It reports whether every cell is now dead.
func (s *Session) step(gen int, stats *utils.Stats) (bool, error) {
	if s.cfg.ClearScreen {
		if err := s.renderer.Clear(); err != nil {
			s.logger.Warn("clear screen failed", "error", err)
		}
	}

	frameStart := s.now()
	s.say(msgGeneration, gen, s.grid.CountAlive())
	if err := s.grid.Advance(); err != nil {
		return false, errors.Wrapf(err, "[step] generation %d", gen)
	}
	if err := s.renderer.Display(s.grid); err != nil {
		return false, err
	}

	alive := s.grid.CountAlive()
	stats.Update(gen, alive, s.now().Sub(frameStart))
	s.logger.Debug("generation advanced", "generation", gen, "alive", alive)

	hash := s.grid.Hash()
	if period, ok := s.history.Repeats(hash); ok && alive > 0 {
		s.logger.Debug("board repeats an earlier state", "generation", gen, "period", period)
	}
	s.history.Record(hash)

	return alive == 0, nil
}

// seed populates the board according to the seeding mode
func (s *Session) seed() error {
	mode := s.opts.Seeding
	if mode == SeedAsk {
		random, err := s.askRandom()
		if err != nil {
			return err
		}
		mode = SeedManual
		if random {
			mode = SeedRandom
		}
	}

	switch mode {
	case SeedRandom:
		s.grid.SeedRandom(s.randomSource())
		s.say(msgRandomMode)
	case SeedPattern:
		if err := s.grid.Place(s.opts.Pattern); err != nil {
			return err
		}
		s.say(msgPatternMode, s.opts.Pattern.Name)
	default:
		s.say(msgManualMode)
		if err := s.readCells(); err != nil {
			return err
		}
	}

	s.logger.Info("board seeded", "mode", mode.String(), "alive", s.grid.CountAlive())
	return nil
}

func (s *Session) randomSource() model.RandomSource {
	if s.opts.Source != nil {
		return s.opts.Source
	}
	seed := s.cfg.RandomSeed(s.now())
	s.logger.Debug("random source created", "seed", seed)
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func (s *Session) askRandom() (bool, error) {
	s.say(msgAskRandom)
	for {
		line, err := s.in.readLine()
		if err != nil {
			return false, err
		}
		random, err := parseYesNo(line)
		if err == nil {
			return random, nil
		}
		s.logger.Debug("rejected input", "prompt", "seeding", "error", err)
		s.say(msgAskRandomRetry)
	}
}

// readCells seeds coordinates until the -1 -1 sentinel
func (s *Session) readCells() error {
	s.say(msgAskCells)
	for {
		line, err := s.in.readLine()
		if err != nil {
			return err
		}
		p, done, err := parseCoordinate(line)
		switch {
		case err == nil && done:
			return nil
		case err == nil:
			if err = s.grid.SeedCell(p.Row, p.Col); err != nil {
				return err
			}
		case errors.Is(err, model.ErrInvalidCoordinate):
			s.logger.Debug("rejected input", "prompt", "coordinate", "error", err)
			s.say(msgOutOfBounds)
		default:
			s.logger.Debug("rejected input", "prompt", "coordinate", "error", err)
			s.say(msgAskPair)
		}
	}
}

// selectRule applies the preselected rule or asks for one from the menu
func (s *Session) selectRule() error {
	r := s.opts.Rule
	if r == rules.Unset {
		var err error
		if r, err = s.askRule(); err != nil {
			return err
		}
	}
	if err := s.grid.SelectRule(r); err != nil {
		return err
	}

	s.say(msgSelectedRule, s.p.Sprintf(r.Name()))
	s.say(r.Description())
	return nil
}

func (s *Session) askRule() (rules.RuleSet, error) {
	s.say(msgChooseRule)
	for i, r := range rules.All() {
		s.say(msgRuleItem, i+1, s.p.Sprintf(r.Name()))
	}
	for {
		s.say(msgAskRule)
		line, err := s.in.readLine()
		if err != nil {
			return rules.Unset, err
		}
		r, err := parseRuleChoice(line)
		if err == nil {
			return r, nil
		}
		s.logger.Debug("rejected input", "prompt", "rule", "error", err)
		if errors.Is(err, rules.ErrInvalidRuleIndex) {
			s.say(msgInvalidRule)
		} else {
			s.say(msgNotNumber)
		}
	}
}

// generationLimit returns the preset bound or asks until a positive one is given
func (s *Session) generationLimit() (int, error) {
	if s.opts.Generations > 0 {
		return s.opts.Generations, nil
	}
	for {
		s.say(msgAskGenerations)
		line, err := s.in.readLine()
		if err != nil {
			return 0, err
		}
		n, err := parseGenerationCount(line)
		if err == nil {
			return n, nil
		}
		s.logger.Debug("rejected input", "prompt", "generations", "error", err)
		if errors.Is(err, ErrInvalidGenerationCount) {
			s.say(msgGenerationsLow)
		} else {
			s.say(msgGenerationsNaN)
		}
	}
}

// say prints a localized message followed by a newline
func (s *Session) say(key message.Reference, args ...interface{}) {
	s.p.Fprintf(s.out, key, args...)
	io.WriteString(s.out, "\n")
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
