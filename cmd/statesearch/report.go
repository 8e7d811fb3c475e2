package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/core"
)

// Report is the document printed by the run command.
type Report struct {
	RunID     string   `yaml:"run_id" json:"run_id"`
	Blocks    int      `yaml:"blocks" json:"blocks"`
	Heuristic string   `yaml:"heuristic" json:"heuristic"`
	Results   []Result `yaml:"results" json:"results"`
}

// Result is one strategy's outcome.
type Result struct {
	Algorithm string `yaml:"algorithm" json:"algorithm"`
	Reachable bool   `yaml:"reachable" json:"reachable"`
	Cost      int    `yaml:"cost" json:"cost"`
	Expanded  int    `yaml:"expanded" json:"expanded"`
	Steps     []Step `yaml:"steps,omitempty" json:"steps,omitempty"`
	Error     string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Step is one transition of a solution path.
type Step struct {
	Action string `yaml:"action" json:"action"`
	From   int    `yaml:"from" json:"from"`
	To     int    `yaml:"to" json:"to"`
	Cost   int    `yaml:"cost" json:"cost"`
}

func newResult(name string, sol core.Solution[int, int], err error) Result {
	res := Result{
		Algorithm: name,
		Reachable: sol.Reachable,
		Cost:      sol.Cost,
		Expanded:  sol.Expanded,
	}
	if err != nil {
		res.Error = err.Error()
	}
	for _, t := range sol.Path {
		res.Steps = append(res.Steps, Step{Action: t.Action, From: t.From, To: t.To, Cost: t.Cost})
	}

	return res
}

// writeReport renders rep in the requested format.
func writeReport(w io.Writer, format string, rep Report) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("statesearch: encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("statesearch: encode json: %w", err)
		}
		return nil
	default:
		return writeText(w, rep)
	}
}

// textStyles are bound to the output writer so colour is dropped when it is
// not a terminal.
type textStyles struct {
	title lipgloss.Style
	name  lipgloss.Style
	muted lipgloss.Style
	bad   lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)

	return textStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
		name:  r.NewStyle().Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	}
}

func writeText(w io.Writer, rep Report) error {
	st := newTextStyles(w)

	header := fmt.Sprintf("transport problem, %d blocks (heuristic %s)", rep.Blocks, rep.Heuristic)
	if _, err := fmt.Fprintln(w, st.title.Render(header)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, st.muted.Render("run "+rep.RunID)); err != nil {
		return err
	}

	for _, res := range rep.Results {
		if _, err := fmt.Fprintf(w, "\n%s  expanded=%d\n", st.name.Render(res.Algorithm), res.Expanded); err != nil {
			return err
		}
		switch {
		case res.Error != "":
			_, err := fmt.Fprintln(w, "  "+st.bad.Render("error: "+res.Error))
			if err != nil {
				return err
			}
			continue
		case !res.Reachable:
			if _, err := fmt.Fprintln(w, "  "+st.bad.Render("unreachable")); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "  totalCost: %s\n", strconv.Itoa(res.Cost)); err != nil {
			return err
		}
		for _, s := range res.Steps {
			if _, err := fmt.Fprintf(w, "  %s: %d -> %d (%d)\n", s.Action, s.From, s.To, s.Cost); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeMetrics dumps every family gathered from reg in the text exposition format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("statesearch: gather metrics: %w", err)
	}
	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("statesearch: write metrics: %w", err)
		}
	}

	return nil
}
