package lite

import "context"

type optionKey string

const linesKey optionKey = "lite_lines"

// WithLines stores the number of worker lines in ctx.
func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, linesKey, lines)
}

// Lines returns the worker line count stored in ctx, or def when absent or not positive.
func Lines(ctx context.Context, def int) int {
	if n, ok := ctx.Value(linesKey).(int); ok && n > 0 {
		return n
	}
	return def
}
