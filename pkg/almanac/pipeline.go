package almanac

import (
	"context"
	"fmt"
	"slices"
)

// Pipeline applies its stages left to right.
type Pipeline struct {
	stages []*Stage
}

func NewPipeline(stages ...*Stage) (*Pipeline, error) {
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilStage, i)
		}
	}
	return &Pipeline{stages: slices.Clone(stages)}, nil
}

func (p *Pipeline) Stages() []*Stage {
	return slices.Clone(p.stages)
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Propagate threads ivs through every stage and returns the final working set.
func (p *Pipeline) Propagate(ivs []Interval) ([]Interval, error) {
	ws, err := workingSet(ivs)
	if err != nil {
		return nil, err
	}
	for _, s := range p.stages {
		if ws, err = s.Apply(ws); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

// PropagateParallel is Propagate with each stage applied on the given number of lines.
func (p *Pipeline) PropagateParallel(ctx context.Context, ivs []Interval, lines int) ([]Interval, error) {
	ws, err := workingSet(ivs)
	if err != nil {
		return nil, err
	}
	for _, s := range p.stages {
		if ws, err = s.ApplyParallel(ctx, ws, lines); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

// ClosestDestination returns the smallest value reachable from ivs after the
// last stage. It fails with ErrEmptyWorkingSet when ivs holds no values.
func (p *Pipeline) ClosestDestination(ivs []Interval) (int64, error) {
	ws, err := p.Propagate(ivs)
	if err != nil {
		return 0, err
	}
	return lowest(ws), nil
}

func (p *Pipeline) ClosestDestinationParallel(ctx context.Context, ivs []Interval, lines int) (int64, error) {
	ws, err := p.PropagateParallel(ctx, ivs, lines)
	if err != nil {
		return 0, err
	}
	return lowest(ws), nil
}

// Locate maps a single value through every stage.
func (p *Pipeline) Locate(n int64) (int64, error) {
	trace, err := p.Trace(n)
	if err != nil {
		return 0, err
	}
	return trace[len(trace)-1], nil
}

// Trace returns n followed by its value after each stage.
func (p *Pipeline) Trace(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	out := make([]int64, 0, len(p.stages)+1)
	out = append(out, n)
	for _, s := range p.stages {
		n = s.Lookup(n)
		out = append(out, n)
	}
	return out, nil
}

func workingSet(ivs []Interval) ([]Interval, error) {
	ws := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			ws = append(ws, iv)
		}
	}
	if len(ws) == 0 {
		return nil, ErrEmptyWorkingSet
	}
	return ws, nil
}

// Lowest returns the smallest Start in ivs, ignoring empty intervals.
func Lowest(ivs []Interval) (int64, error) {
	ws, err := workingSet(ivs)
	if err != nil {
		return 0, err
	}
	return lowest(ws), nil
}

// lowest expects a non-empty ws; stages conserve width so a non-empty input
// never yields an empty output.
func lowest(ws []Interval) int64 {
	m := ws[0].Start
	for _, iv := range ws[1:] {
		m = min(m, iv.Start)
	}
	return m
}
