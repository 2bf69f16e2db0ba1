package almanac

import (
	"fmt"
	"math"
)

// Rule shifts the source range [Source, Source+Length) onto
// [Destination, Destination+Length). Fields follow the row order of the
// almanac document: destination, source, length.
type Rule struct {
	Destination int64
	Source      int64
	Length      int64
}

// NewRule returns a validated rule.
func NewRule(destination, source, length int64) (Rule, error) {
	r := Rule{Destination: destination, Source: source, Length: length}
	if err := r.validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func (r Rule) validate() error {
	if r.Length <= 0 {
		return fmt.Errorf("%w: length %d in %s", ErrMalformedRule, r.Length, r)
	}
	if r.Source < 0 || r.Destination < 0 {
		return fmt.Errorf("%w: %s", ErrNegative, r)
	}
	if r.Source > math.MaxInt64-r.Length || r.Destination > math.MaxInt64-r.Length {
		return fmt.Errorf("%w: %s", ErrOverflow, r)
	}
	return nil
}

func (r Rule) SourceRange() Interval {
	return Interval{Start: r.Source, End: r.Source + r.Length}
}

func (r Rule) DestinationRange() Interval {
	return Interval{Start: r.Destination, End: r.Destination + r.Length}
}

// Offset is the signed shift applied to every covered value.
func (r Rule) Offset() int64 {
	return r.Destination - r.Source
}

// Map returns the destination of p, and false when p is outside the rule.
func (r Rule) Map(p int64) (int64, bool) {
	if !r.SourceRange().Contains(p) {
		return p, false
	}
	return p - r.Source + r.Destination, true
}

// translate shifts iv, which must lie inside the source range, by the offset.
func (r Rule) translate(iv Interval) (Interval, error) {
	off := r.Offset()
	start, ok1 := shift(iv.Start, off)
	end, ok2 := shift(iv.End, off)
	if !ok1 || !ok2 {
		return Interval{}, fmt.Errorf("%w: %s shifted by %d", ErrOverflow, iv, off)
	}
	return Interval{Start: start, End: end}, nil
}

func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination, r.Source, r.Length)
}

// shift adds off to v, reporting false when the result is negative or overflows.
func shift(v, off int64) (int64, bool) {
	if off > 0 && v > math.MaxInt64-off {
		return 0, false
	}
	out := v + off
	if out < 0 {
		return 0, false
	}
	return out, true
}
