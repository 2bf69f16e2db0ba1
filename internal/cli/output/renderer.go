// Package output renders command results as text, JSON or a table.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ib-77/almanac/internal/solve"
	"github.com/ib-77/almanac/pkg/almanac"
)

// Mode selects the rendering.
type Mode string

const (
	ModeText  Mode = "text"
	ModeJSON  Mode = "json"
	ModeTable Mode = "table"
)

// Renderer writes results to out.
type Renderer struct {
	out  io.Writer
	mode Mode
}

func NewRenderer(out io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, mode: mode}
}

func (r *Renderer) Mode() Mode {
	return r.mode
}

// Report renders a solve report.
func (r *Renderer) Report(rep *solve.Report) error {
	switch r.mode {
	case ModeJSON:
		return r.json(rep)
	case ModeTable:
		t := r.table()
		t.AppendHeader(table.Row{"Mode", "Inputs", "Intervals", "Width", "Closest"})
		for _, res := range rep.Results {
			t.AppendRow(table.Row{res.Mode, res.Inputs, res.Intervals, res.Width, res.Closest})
		}
		t.Render()
		return nil
	default:
		for _, res := range rep.Results {
			if _, err := fmt.Fprintf(r.out, "%s: %d\n", res.Mode, res.Closest); err != nil {
				return err
			}
		}
		return nil
	}
}

// StageView is the printable form of a stage.
type StageView struct {
	Name        string     `json:"name"`
	Source      string     `json:"source,omitempty"`
	Destination string     `json:"destination,omitempty"`
	Rules       []RuleView `json:"rules"`
}

type RuleView struct {
	Destination int64 `json:"destination"`
	Source      int64 `json:"source"`
	Length      int64 `json:"length"`
	Offset      int64 `json:"offset"`
}

// Stages renders every stage of p with its rules in source order.
func (r *Renderer) Stages(p *almanac.Pipeline) error {
	views := make([]StageView, 0, p.Len())
	for _, s := range p.Stages() {
		v := StageView{Name: s.Name, Source: s.Source, Destination: s.Destination, Rules: []RuleView{}}
		for _, rule := range s.Rules() {
			v.Rules = append(v.Rules, RuleView{
				Destination: rule.Destination,
				Source:      rule.Source,
				Length:      rule.Length,
				Offset:      rule.Offset(),
			})
		}
		views = append(views, v)
	}

	switch r.mode {
	case ModeJSON:
		return r.json(views)
	case ModeTable:
		t := r.table()
		t.AppendHeader(table.Row{"Stage", "Source", "Destination", "Length", "Offset"})
		for _, v := range views {
			for _, rule := range v.Rules {
				t.AppendRow(table.Row{v.Name, rule.Source, rule.Destination, rule.Length, signed(rule.Offset)})
			}
		}
		t.Render()
		return nil
	default:
		for i, v := range views {
			if i > 0 {
				_, _ = fmt.Fprintln(r.out)
			}
			_, _ = fmt.Fprintf(r.out, "%s map:\n", v.Name)
			for _, rule := range v.Rules {
				_, _ = fmt.Fprintf(r.out, "%d %d %d\n", rule.Destination, rule.Source, rule.Length)
			}
		}
		return nil
	}
}

// Step is one value along a trace.
type Step struct {
	Stage    string `json:"stage,omitempty"`
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// Trace renders the path of a single value.
func (r *Renderer) Trace(steps []Step) error {
	switch r.mode {
	case ModeJSON:
		return r.json(steps)
	case ModeTable:
		t := r.table()
		t.AppendHeader(table.Row{"Stage", "Category", "Value"})
		for _, s := range steps {
			t.AppendRow(table.Row{s.Stage, s.Category, s.Value})
		}
		t.Render()
		return nil
	default:
		for i, s := range steps {
			sep := " -> "
			if i == 0 {
				sep = ""
			}
			_, _ = fmt.Fprintf(r.out, "%s%s %d", sep, s.Category, s.Value)
		}
		_, err := fmt.Fprintln(r.out)
		return err
	}
}

func (r *Renderer) table() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func signed(n int64) string {
	if n > 0 {
		return "+" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
