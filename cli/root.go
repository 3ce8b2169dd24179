package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-gol-variants/game"
	"github.com/sheikhrachel/go-gol-variants/model"
	"github.com/sheikhrachel/go-gol-variants/rules"
	"github.com/sheikhrachel/go-gol-variants/utils"
)

// RootOptions holds the command-line flags.
type RootOptions struct {
	ConfigPath  string
	Verbose     bool
	Language    string
	Random      bool
	Manual      bool
	Pattern     string
	Rule        string
	Generations int
	Seed        int64
	Delay       time.Duration
	Clear       bool
	NoWait      bool
}

// NewRootCommand creates the golife command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "golife",
		Short: "Game of Life on a 10x10 board",
		Long: `Run Conway's Game of Life, or one of its Stable Life and High Life
variants, on a fixed 10x10 board without wraparound.

Any prompt can be answered up front with a flag, which makes the run
non-interactive. Example:

  golife --pattern blinker --rule conway --generations 4 --delay 0
  golife --random --seed 42 --rule highlife --generations 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().StringVar(&opts.Language, "lang", "", "message language (en, pt-BR)")
	cmd.Flags().BoolVar(&opts.Random, "random", false, "seed the board randomly")
	cmd.Flags().BoolVar(&opts.Manual, "manual", false, "enter live cells by hand")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", fmt.Sprintf("seed a preset pattern (%s)", strings.Join(model.PatternNames(), ", ")))
	cmd.Flags().StringVarP(&opts.Rule, "rule", "r", "", "rule set by name or menu number (conway, stablelife, highlife)")
	cmd.Flags().IntVarP(&opts.Generations, "generations", "g", 0, "maximum number of generations")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "pause between generations (default from config, 500ms)")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "clear the screen before each generation")
	cmd.Flags().BoolVar(&opts.NoWait, "no-wait", false, "start without waiting for ENTER")
	cmd.MarkFlagsMutuallyExclusive("random", "manual", "pattern")

	return cmd
}

func runSimulation(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	sessionOpts, err := sessionOptions(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "config", opts.ConfigPath, "language", cfg.Language, "delay", cfg.Delay)

	// Handle Ctrl+C between generations
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, sessionOpts, logger)
	_, err = session.Run(ctx)
	return classify(err)
}

// loadConfig reads the config file, if any, and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *RootOptions) (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = utils.LoadConfig(opts.ConfigPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Delay = opts.Delay
	}
	if flags.Changed("lang") {
		cfg.Language = opts.Language
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("clear") {
		cfg.ClearScreen = opts.Clear
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "[loadConfig]")
	}
	return cfg, nil
}

// sessionOptions turns flags into pre-answered prompts, validated the same
// way as typed answers
func sessionOptions(cmd *cobra.Command, opts *RootOptions) (game.Options, error) {
	out := game.Options{WaitForStart: !opts.NoWait}

	switch {
	case opts.Pattern != "":
		p, err := model.LookupPattern(opts.Pattern)
		if err != nil {
			return out, err
		}
		out.Seeding = game.SeedPattern
		out.Pattern = p
	case opts.Random:
		out.Seeding = game.SeedRandom
	case opts.Manual:
		out.Seeding = game.SeedManual
	}

	if opts.Rule != "" {
		r, err := rules.Parse(opts.Rule)
		if err != nil {
			return out, err
		}
		out.Rule = r
	}

	if cmd.Flags().Changed("generations") {
		if opts.Generations <= 0 {
			return out, errors.Wrapf(game.ErrInvalidGenerationCount, "[sessionOptions] --generations %d", opts.Generations)
		}
		out.Generations = opts.Generations
	}

	return out, nil
}

// newLogger builds the stderr logger tagged with a fresh run ID
func newLogger(w io.Writer, cfg utils.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	runID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "[newLogger] failed to generate run id")
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", runID.String()), nil
}

// Execute runs the root command with a background context
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
