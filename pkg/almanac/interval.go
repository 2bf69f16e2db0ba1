package almanac

import (
	"fmt"
	"math"
)

// Interval is the half-open range [Start, End) of non-negative integers.
// Start == End is empty.
type Interval struct {
	Start, End int64
}

// NewInterval validates and returns [start, end).
func NewInterval(start, end int64) (Interval, error) {
	if start < 0 || end < 0 {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrNegative, start, end)
	}
	if start > end {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Point returns the single-value interval [n, n+1).
func Point(n int64) (Interval, error) {
	if n == math.MaxInt64 {
		return Interval{}, fmt.Errorf("%w: point %d", ErrOverflow, n)
	}
	return NewInterval(n, n+1)
}

// Span returns [start, start+length).
func Span(start, length int64) (Interval, error) {
	if length < 0 {
		return Interval{}, fmt.Errorf("%w: length %d", ErrNegative, length)
	}
	if start > math.MaxInt64-length {
		return Interval{}, fmt.Errorf("%w: %d+%d", ErrOverflow, start, length)
	}
	return NewInterval(start, start+length)
}

func (i Interval) Len() int64 {
	return i.End - i.Start
}

func (i Interval) Empty() bool {
	return i.Start >= i.End
}

func (i Interval) Contains(n int64) bool {
	return n >= i.Start && n < i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}

// Overlap returns the intersection of a and b, and false when it is empty.
func Overlap(a, b Interval) (Interval, bool) {
	o := Interval{Start: max(a.Start, b.Start), End: min(a.End, b.End)}
	if o.Empty() {
		return Interval{}, false
	}
	return o, true
}

// Subtract splits a around b. before holds the values of a left of b and
// after the values right of b; either may be empty, meaning absent.
func Subtract(a, b Interval) (before, after Interval) {
	before = Interval{Start: a.Start, End: min(a.End, b.Start)}
	after = Interval{Start: max(a.Start, b.End), End: a.End}
	if before.Empty() {
		before = Interval{}
	}
	if after.Empty() {
		after = Interval{}
	}
	return before, after
}

// Width sums the lengths of ivs.
func Width(ivs []Interval) int64 {
	var w int64
	for _, iv := range ivs {
		if !iv.Empty() {
			w += iv.Len()
		}
	}
	return w
}
