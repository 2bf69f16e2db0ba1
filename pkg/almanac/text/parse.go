package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ib-77/almanac/pkg/almanac"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Document is a parsed almanac.
type Document struct {
	Seeds  []int64
	Stages []StageDef
}

// StageDef is one stage block as written, rows in (destination, source, length) order.
type StageDef struct {
	Name        string
	Source      string
	Destination string
	Rows        [][3]int64
	Line        int
}

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// Parse reads a document from r.
func Parse(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	doc := &Document{}
	var (
		line     int
		seenSeed bool
		current  *StageDef
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())

		switch {
		case text == "":
			current = nil

		case strings.HasPrefix(text, seedsPrefix):
			if seenSeed {
				return nil, &SyntaxError{Line: line, Msg: "duplicate seeds line"}
			}
			if len(doc.Stages) > 0 {
				return nil, &SyntaxError{Line: line, Msg: "seeds line after stages"}
			}
			seeds, err := numbers(strings.TrimPrefix(text, seedsPrefix))
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: err.Error()}
			}
			doc.Seeds = seeds
			seenSeed = true

		case strings.HasSuffix(text, mapSuffix):
			if !seenSeed {
				return nil, &SyntaxError{Line: line, Msg: "stage before seeds line"}
			}
			name := strings.TrimSpace(strings.TrimSuffix(text, mapSuffix))
			if name == "" || strings.ContainsAny(name, " \t") {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("bad stage header %q", text)}
			}
			def := StageDef{Name: name, Line: line}
			if src, dst, ok := strings.Cut(name, "-to-"); ok {
				def.Source, def.Destination = src, dst
			}
			doc.Stages = append(doc.Stages, def)
			current = &doc.Stages[len(doc.Stages)-1]

		default:
			if current == nil {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("row outside a stage: %q", text)}
			}
			ns, err := numbers(text)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: err.Error()}
			}
			if len(ns) != 3 {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("want 3 numbers, got %d", len(ns))}
			}
			current.Rows = append(current.Rows, [3]int64{ns[0], ns[1], ns[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read almanac: %w", err)
	}
	if !seenSeed {
		return nil, &SyntaxError{Line: line, Msg: "missing seeds line"}
	}
	return doc, nil
}

func numbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Pipeline builds the stages in document order.
func (d *Document) Pipeline() (*almanac.Pipeline, error) {
	stages := make([]*almanac.Stage, 0, len(d.Stages))
	for _, def := range d.Stages {
		st, err := def.Stage()
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return almanac.NewPipeline(stages...)
}

// Stage validates the rows and builds the stage.
func (def StageDef) Stage() (*almanac.Stage, error) {
	rules := make([]almanac.Rule, 0, len(def.Rows))
	for i, row := range def.Rows {
		r, err := almanac.NewRule(row[0], row[1], row[2])
		if err != nil {
			return nil, fmt.Errorf("stage %q row %d: %w", def.Name, i+1, err)
		}
		rules = append(rules, r)
	}
	return almanac.NewStage(def.Name, rules...)
}
