package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/astar"
	"github.com/katalvlaran/statespace/backtrack"
	"github.com/katalvlaran/statespace/dfs"
	"github.com/katalvlaran/statespace/dynprog"
	"github.com/katalvlaran/statespace/ucs"
)

// Heuristic names accepted by --heuristic.
const (
	heuristicAdmissible = "admissible"
	heuristicManhattan  = "manhattan"
	heuristicZero       = "zero"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

var errBadConfig = errors.New("statesearch: invalid configuration")

// allAlgorithms lists the strategies in the order they are run by default.
var allAlgorithms = []string{backtrack.Name, dynprog.Name, ucs.Name, dfs.Name, astar.Name}

// Config is the run configuration. It can be loaded from YAML and is then
// overridden by any flag set explicitly on the command line.
type Config struct {
	Blocks        int      `yaml:"blocks"`
	Algorithms    []string `yaml:"algorithms"`
	Heuristic     string   `yaml:"heuristic"`
	MaxExpansions int      `yaml:"max_expansions"` // 0 means unlimited
	MaxDepth      int      `yaml:"max_depth"`      // 0 means unlimited
	Format        string   `yaml:"format"`
	LogLevel      string   `yaml:"log_level"`
	Metrics       bool     `yaml:"metrics"`
}

// defaultConfig mirrors the flag defaults.
func defaultConfig() Config {
	return Config{
		Blocks:     40,
		Algorithms: slices.Clone(allAlgorithms),
		Heuristic:  heuristicAdmissible,
		Format:     formatText,
		LogLevel:   "warn",
	}
}

// loadConfig reads a YAML file on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("statesearch: read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("statesearch: parse config %s: %w", path, err)
	}

	return cfg, nil
}

// applyFlags overrides cfg with every flag the user changed.
func applyFlags(cfg *Config, flags *pflag.FlagSet) error {
	var err error
	if flags.Changed("blocks") {
		if cfg.Blocks, err = flags.GetInt("blocks"); err != nil {
			return err
		}
	}
	if flags.Changed("algorithms") {
		if cfg.Algorithms, err = flags.GetStringSlice("algorithms"); err != nil {
			return err
		}
	}
	if flags.Changed("heuristic") {
		if cfg.Heuristic, err = flags.GetString("heuristic"); err != nil {
			return err
		}
	}
	if flags.Changed("max-expansions") {
		if cfg.MaxExpansions, err = flags.GetInt("max-expansions"); err != nil {
			return err
		}
	}
	if flags.Changed("max-depth") {
		if cfg.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if flags.Changed("metrics") {
		if cfg.Metrics, err = flags.GetBool("metrics"); err != nil {
			return err
		}
	}

	return nil
}

// validate normalises names and rejects unusable values.
func (c *Config) validate() error {
	if c.Blocks < 1 {
		return fmt.Errorf("%w: blocks must be at least 1, got %d", errBadConfig, c.Blocks)
	}
	if c.MaxExpansions < 0 || c.MaxDepth < 0 {
		return fmt.Errorf("%w: limits must be non-negative", errBadConfig)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", errBadConfig)
	}
	for i, name := range c.Algorithms {
		name = strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(allAlgorithms, name) {
			return fmt.Errorf("%w: unknown algorithm %q (want one of %s)",
				errBadConfig, name, strings.Join(allAlgorithms, ", "))
		}
		c.Algorithms[i] = name
	}

	switch c.Heuristic {
	case heuristicAdmissible, heuristicManhattan, heuristicZero:
	default:
		return fmt.Errorf("%w: unknown heuristic %q", errBadConfig, c.Heuristic)
	}
	switch c.Format {
	case formatText, formatYAML, formatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", errBadConfig, c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseLevel maps a level name onto slog.Level.
func parseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", errBadConfig, name)
	}

	return lvl, nil
}
