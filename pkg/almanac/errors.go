package almanac

import "errors"

var (
	// ErrMalformedRule: a rule with a zero or negative length.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrOverlappingRules: two rules of one stage claim the same source values.
	ErrOverlappingRules = errors.New("overlapping rules")
	// ErrEmptyWorkingSet: a query was given no non-empty interval.
	ErrEmptyWorkingSet = errors.New("empty working set")
	// ErrOverflow: a value would leave the int64 range.
	ErrOverflow = errors.New("value overflow")
	ErrNegative = errors.New("negative value")
	// ErrInvalidInterval: an interval whose start is after its end.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrUnpairedSeeds: range-pair input with an odd number of values.
	ErrUnpairedSeeds = errors.New("unpaired seeds")
	ErrNilStage      = errors.New("nil stage")
)
