package almanac

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ib-77/almanac/pkg/rop"
	"github.com/ib-77/almanac/pkg/rop/lite"
)

// Stage is one remapping layer, such as "seed-to-soil". Its rules have
// pairwise disjoint source ranges; values outside every rule map to themselves.
type Stage struct {
	Name        string
	Source      string
	Destination string

	// sorted by Source
	rules []Rule
}

// NewStage validates rules and builds a stage. Rule order does not matter.
// The categories are taken from a name of the form "<source>-to-<destination>".
func NewStage(name string, rules ...Rule) (*Stage, error) {
	sorted := slices.Clone(rules)
	for _, r := range sorted {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("stage %q: %w", name, err)
		}
	}
	slices.SortFunc(sorted, func(a, b Rule) int { return cmp.Compare(a.Source, b.Source) })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Source < prev.Source+prev.Length {
			return nil, fmt.Errorf("stage %q: %w: %v and %v",
				name, ErrOverlappingRules, prev.SourceRange(), cur.SourceRange())
		}
	}

	s := &Stage{Name: name, rules: sorted}
	if src, dst, ok := strings.Cut(name, "-to-"); ok {
		s.Source, s.Destination = src, dst
	}
	return s, nil
}

// Rules returns a copy of the stage's rules ordered by source start.
func (s *Stage) Rules() []Rule {
	return slices.Clone(s.rules)
}

func (s *Stage) Len() int {
	return len(s.rules)
}

// Lookup maps a single value.
func (s *Stage) Lookup(p int64) int64 {
	i := s.firstEndingAfter(p)
	if i < len(s.rules) {
		if v, ok := s.rules[i].Map(p); ok {
			return v
		}
	}
	return p
}

// Apply maps every interval of ivs through the stage. Covered parts are
// shifted by their rule's offset, uncovered parts pass through unchanged and
// empty intervals are dropped. The total width of the output equals that of
// the input.
func (s *Stage) Apply(ivs []Interval) ([]Interval, error) {
	out := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		var err error
		if out, err = s.split(out, iv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ApplyParallel is Apply with the intervals spread over the given number of
// worker lines. The output holds the same intervals as Apply, in any order.
func (s *Stage) ApplyParallel(ctx context.Context, ivs []Interval, lines int) ([]Interval, error) {
	if lines <= 1 || len(ivs) < 2 {
		return s.Apply(ivs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := lite.Run(ctx, lite.ToChanMany(ctx, ivs), func(_ context.Context, iv Interval) rop.Result[[]Interval] {
		pieces, err := s.split(nil, iv)
		if err != nil {
			return rop.Fail[[]Interval](err)
		}
		return rop.Success(pieces)
	}, lines)

	out := make([]Interval, 0, len(ivs))
	var firstErr error
	for r := range results {
		if firstErr != nil {
			continue
		}
		if !r.IsSuccess() {
			firstErr = r.Err()
			cancel()
			continue
		}
		out = append(out, r.Result()...)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("stage %q: %w", s.Name, firstErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// split appends the image of iv to dst. Rules are visited left to right, so
// the part of iv left of the current rule is never covered by a later one.
func (s *Stage) split(dst []Interval, iv Interval) ([]Interval, error) {
	if iv.Empty() {
		return dst, nil
	}

	rest := iv
	for i := s.firstEndingAfter(rest.Start); i < len(s.rules) && !rest.Empty(); i++ {
		r := s.rules[i]
		src := r.SourceRange()
		if src.Start >= rest.End {
			break
		}
		covered, ok := Overlap(rest, src)
		if !ok {
			continue
		}

		before, after := Subtract(rest, src)
		if !before.Empty() {
			dst = append(dst, before)
		}
		mapped, err := r.translate(covered)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", s.Name, err)
		}
		dst = append(dst, mapped)
		rest = after
	}

	if !rest.Empty() {
		dst = append(dst, rest)
	}
	return dst, nil
}

// firstEndingAfter returns the index of the first rule whose source range
// ends after p. Disjoint rules sorted by start are also sorted by end.
func (s *Stage) firstEndingAfter(p int64) int {
	return sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].Source+s.rules[i].Length > p
	})
}
