package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/astar"
	"github.com/katalvlaran/statespace/backtrack"
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/dynprog"
	"github.com/katalvlaran/statespace/promstats"
	"github.com/katalvlaran/statespace/transport"
	"github.com/katalvlaran/statespace/ucs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the selected search strategies",
	Long: `Runs each selected strategy on a transport problem with the given
number of blocks and prints cost, expansions and path for each.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		if err = applyFlags(&cfg, cmd.Flags()); err != nil {
			return err
		}
		if err = cfg.validate(); err != nil {
			return err
		}

		return runSearches(cmd.Context(), cmd, cfg)
	},
}

func init() {
	f := runCmd.Flags()
	f.String("config", "", "YAML file with run settings; explicit flags win")
	f.Int("blocks", 40, "Number of blocks; the trip goes from block 1 to this block")
	f.StringSlice("algorithms", allAlgorithms, "Strategies to run")
	f.String("heuristic", heuristicAdmissible, "A* heuristic: admissible, manhattan, zero")
	f.Int("max-expansions", 0, "Expansion budget per strategy (0 = unlimited)")
	f.Int("max-depth", 0, "Path length bound for backtrack, dfs and dp (0 = unlimited)")
	f.String("format", formatText, "Output format: text, yaml, json")
	f.Bool("metrics", false, "Print Prometheus metrics for the runs after the report")

	rootCmd.AddCommand(runCmd)
}

// searchFunc runs one strategy on p.
type searchFunc func(p transport.Problem, h core.Heuristic[int, int], opts ...core.Option) (core.Solution[int, int], error)

var searches = map[string]searchFunc{
	backtrack.Name: func(p transport.Problem, _ core.Heuristic[int, int], opts ...core.Option) (core.Solution[int, int], error) {
		return backtrack.Search[int, int](p, opts...)
	},
	dynprog.Name: func(p transport.Problem, _ core.Heuristic[int, int], opts ...core.Option) (core.Solution[int, int], error) {
		return dynprog.Search[int, int](p, opts...)
	},
	ucs.Name: func(p transport.Problem, _ core.Heuristic[int, int], opts ...core.Option) (core.Solution[int, int], error) {
		return ucs.Search[int, int](p, opts...)
	},
	dfs.Name: func(p transport.Problem, _ core.Heuristic[int, int], opts ...core.Option) (core.Solution[int, int], error) {
		return dfs.Search[int, int](p, opts...)
	},
	astar.Name: func(p transport.Problem, h core.Heuristic[int, int], opts ...core.Option) (core.Solution[int, int], error) {
		return astar.Search[int, int](p, h, opts...)
	},
}

// heuristicFor resolves the configured A* heuristic.
func heuristicFor(name string, p transport.Problem) core.Heuristic[int, int] {
	switch name {
	case heuristicManhattan:
		return transport.Manhattan(p)
	case heuristicZero:
		return core.ZeroHeuristic[int, int]()
	default:
		return transport.Admissible(p)
	}
}

// runSearches executes every configured strategy and writes the report.
func runSearches(ctx context.Context, cmd *cobra.Command, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})).
		With(slog.String("run_id", runID))

	p, err := transport.New(cfg.Blocks)
	if err != nil {
		return err
	}

	opts := []core.Option{core.WithContext(ctx), core.WithLogger(logger)}
	if cfg.MaxExpansions > 0 {
		opts = append(opts, core.WithMaxExpansions(cfg.MaxExpansions))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, core.WithMaxDepth(cfg.MaxDepth))
	}

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, core.WithObserver(promstats.New(reg)))
	}

	rep := Report{RunID: runID, Blocks: cfg.Blocks, Heuristic: cfg.Heuristic}
	h := heuristicFor(cfg.Heuristic, p)
	failed := 0
	for _, name := range cfg.Algorithms {
		logger.Info("running search", slog.String("algorithm", name), slog.Int("blocks", cfg.Blocks))

		sol, err := searches[name](p, h, opts...)
		res := newResult(name, sol, err)
		if err != nil {
			failed++
			logger.Error("search failed", slog.String("algorithm", name), slog.Any("error", err))
		}
		rep.Results = append(rep.Results, res)
	}

	out := cmd.OutOrStdout()
	if err = writeReport(out, cfg.Format, rep); err != nil {
		return err
	}
	if reg != nil {
		if err = writeMetrics(out, reg); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("statesearch: %d of %d searches failed", failed, len(cfg.Algorithms))
	}

	return nil
}
