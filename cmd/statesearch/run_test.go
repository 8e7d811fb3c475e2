package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})

	return c, &out
}

func testConfig(blocks int, format string) Config {
	cfg := defaultConfig()
	cfg.Blocks = blocks
	cfg.Format = format

	return cfg
}

func TestRunSearches_Text(t *testing.T) {
	c, out := testCommand()
	require.NoError(t, runSearches(context.Background(), c, testConfig(10, formatText)))

	text := out.String()
	assert.Contains(t, text, "10 blocks")
	for _, name := range allAlgorithms {
		assert.Contains(t, text, name)
	}
	assert.Contains(t, text, "totalCost: 6")
	assert.Contains(t, text, "totalCost: 8", "depth-first search is not optimal here")
	assert.Contains(t, text, "walk: 1 -> 2 (1)")
}

func TestRunSearches_JSON(t *testing.T) {
	c, out := testCommand()
	cfg := testConfig(10, formatJSON)
	cfg.Algorithms = []string{"dp", "dfs"}
	require.NoError(t, runSearches(context.Background(), c, cfg))

	var rep Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Results, 2)

	dp, dfs := rep.Results[0], rep.Results[1]
	assert.Equal(t, "dp", dp.Algorithm)
	assert.True(t, dp.Reachable)
	assert.Equal(t, 6, dp.Cost)
	assert.Equal(t, 8, dfs.Cost)

	var sum int
	for _, s := range dfs.Steps {
		sum += s.Cost
	}
	assert.Equal(t, dfs.Cost, sum)
	assert.Equal(t, 10, dfs.Steps[len(dfs.Steps)-1].To)
}

func TestRunSearches_YAML(t *testing.T) {
	c, out := testCommand()
	cfg := testConfig(5, formatYAML)
	cfg.Algorithms = []string{"astar"}
	cfg.Heuristic = heuristicZero
	require.NoError(t, runSearches(context.Background(), c, cfg))

	var rep Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	require.Len(t, rep.Results, 1)
	assert.Equal(t, "zero", rep.Heuristic)
	assert.True(t, rep.Results[0].Reachable)
}

func TestRunSearches_FailureIsReported(t *testing.T) {
	c, out := testCommand()
	cfg := testConfig(10, formatText)
	cfg.Algorithms = []string{"ucs"}
	cfg.MaxExpansions = 1

	err := runSearches(context.Background(), c, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 searches failed")
	assert.Contains(t, out.String(), "error:")
}

func TestRunSearches_DepthBoundMarksUnreachable(t *testing.T) {
	c, out := testCommand()
	cfg := testConfig(10, formatText)
	cfg.Algorithms = []string{"backtrack"}
	cfg.MaxDepth = 1

	require.NoError(t, runSearches(context.Background(), c, cfg))
	assert.Contains(t, out.String(), "unreachable")
}

func TestRunSearches_Metrics(t *testing.T) {
	c, out := testCommand()
	cfg := testConfig(6, formatText)
	cfg.Algorithms = []string{"ucs", "dp"}
	cfg.Metrics = true

	require.NoError(t, runSearches(context.Background(), c, cfg))
	assert.Contains(t, out.String(), `statespace_searches_total{algorithm="ucs",outcome="found"} 1`)
	assert.Contains(t, out.String(), `statespace_searches_total{algorithm="dp",outcome="found"} 1`)
}

func TestRootCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "statesearch version dev\n", out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"run", "--blocks", "10", "--algorithms", "ucs", "--format", "json"})
	require.NoError(t, rootCmd.Execute())

	var rep Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	require.Len(t, rep.Results, 1)
	assert.Equal(t, 6, rep.Results[0].Cost)

	rootCmd.SetArgs([]string{"run", "--heuristic", "euclid"})
	assert.ErrorIs(t, rootCmd.Execute(), errBadConfig)
}
