// Command chaosgame runs the chaos game on a regular N-gon and reports the
// resulting attractor: a run summary on stderr-free stdout, optionally
// followed by the emitted point stream as plain "k x y vertex" lines.
//
// It is a thin collaborator over the chaos engine: all validation of the
// core configuration happens inside the library; the command only parses
// options, merges an optional YAML config file under explicit flags, and
// chooses a time-based seed when none is given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chaosgame/chaos"
	"github.com/katalvlaran/chaosgame/polygon"
	"github.com/katalvlaran/chaosgame/rule"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaosgame",
		Short: "Chaos-game attractor generator for regular polygons",
		Long: `chaosgame iterates the chaos game: a point repeatedly contracts toward a
randomly chosen vertex of a regular N-gon, subject to an exclusion rule.
The visited points trace a fractal attractor.

The contraction ratio defaults to the closed-form "kissing" ratio for the
polygon order; selection rules range from unconstrained to no-repeat,
no-adjacent and custom offset exclusions.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newRatioCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chaosgame version %s\n", version)
		},
	}
}

// newRatioCmd exposes the closed-form kissing ratio as a standalone helper.
func newRatioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratio N",
		Short: "Print the kissing contraction ratio for a regular N-gon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("N must be an integer: %q", args[0])
			}
			r, err := polygon.AutoRatio(n)
			if err != nil {
				return err
			}
			fmt.Printf("%.12f\n", r)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the chaos game and print a summary (optionally the points)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runGame(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("n", defaultConfig().N, "polygon order (N ≥ 5)")
	flags.Int("iterations", defaultConfig().Iterations, "total iteration count")
	flags.String("ratio", defaultConfig().Ratio, `contraction ratio: "auto" or a number in (0, 1.5)`)
	flags.String("rule", defaultConfig().Rule, "selection rule preset: none|noRepeat|noAdjacent|noNeighbors")
	flags.IntSlice("exclude", nil, "offset-exclusion set relative to the previous pick (overrides --rule)")
	flags.Int64("seed", 0, "random seed; omit for a time-based seed, pass 0 explicitly for the fixed default")
	flags.Int("burn-in", defaultConfig().BurnIn, "leading iterations computed but not emitted")
	flags.Int("history", defaultConfig().History, "capacity of the recent-selection buffer")
	flags.Float64("radius", defaultConfig().Radius, "polygon circumradius")
	flags.Float64("rotation", defaultConfig().Rotation, "polygon rotation in radians")
	flags.Bool("points", false, "stream emitted points to stdout as \"k x y vertex\" lines")
	flags.String("config", "", "YAML config file; explicit flags win over file values")

	return cmd
}

// runGame translates the merged configuration into engine options and runs.
func runGame(cmd *cobra.Command, cfg runConfig) error {
	preset, err := rule.ParsePreset(cfg.Rule)
	if err != nil {
		return err
	}

	opts := []chaos.Option{
		chaos.WithContext(cmd.Context()),
		chaos.WithSeed(cfg.Seed),
		chaos.WithRatio(cfg.Ratio),
		chaos.WithBurnIn(cfg.BurnIn),
		chaos.WithHistoryLen(cfg.History),
		chaos.WithRadius(cfg.Radius),
		chaos.WithRotation(cfg.Rotation),
		chaos.WithPreset(preset),
	}
	if len(cfg.Exclude) > 0 {
		opts = append(opts, chaos.WithOffsets(cfg.Exclude))
	}

	out := cmd.OutOrStdout()
	emitted := 0
	if cfg.Points {
		// Stream-only: the hook prints, nothing is retained.
		opts = append(opts, chaos.WithoutPoints(), chaos.WithOnPoint(streamPoints(out, &emitted)))
	}

	res, err := chaos.Run(cfg.N, cfg.Iterations, opts...)
	if err != nil {
		return err
	}
	if !cfg.Points {
		emitted = len(res.Points)
	}

	fmt.Fprintf(out, "n=%d iterations=%d burnIn=%d seed=%d\n", cfg.N, cfg.Iterations, cfg.BurnIn, cfg.Seed)
	fmt.Fprintf(out, "ratio=%.12f rule=%s points=%d\n", res.Ratio, res.Rule, emitted)

	return nil
}
