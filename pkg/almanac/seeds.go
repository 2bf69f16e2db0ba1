package almanac

import (
	"fmt"
	"strings"
)

// Mode selects how a list of seed numbers becomes a working set.
type Mode string

const (
	// ModeScalar treats every number as a single value.
	ModeScalar Mode = "scalar"
	// ModeRanges reads consecutive (start, length) pairs.
	ModeRanges Mode = "ranges"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeScalar, ModeRanges:
		return m, nil
	default:
		return "", fmt.Errorf("unknown seed mode %q", s)
	}
}

// Intervals converts ns according to mode.
func Intervals(mode Mode, ns []int64) ([]Interval, error) {
	switch mode {
	case ModeScalar:
		return FromScalars(ns)
	case ModeRanges:
		return FromPairs(ns)
	default:
		return nil, fmt.Errorf("unknown seed mode %q", mode)
	}
}

// FromScalars turns every n into [n, n+1).
func FromScalars(ns []int64) ([]Interval, error) {
	out := make([]Interval, 0, len(ns))
	for _, n := range ns {
		iv, err := Point(n)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

// FromPairs turns each (start, length) pair into [start, start+length).
// Zero-length pairs hold no values and are left out.
func FromPairs(ns []int64) ([]Interval, error) {
	if len(ns)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrUnpairedSeeds, len(ns))
	}
	out := make([]Interval, 0, len(ns)/2)
	for i := 0; i < len(ns); i += 2 {
		iv, err := Span(ns[i], ns[i+1])
		if err != nil {
			return nil, err
		}
		if !iv.Empty() {
			out = append(out, iv)
		}
	}
	return out, nil
}
