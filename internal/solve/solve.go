// Package solve runs one almanac query: parse the document, build the
// pipeline and find the closest destination for each requested seed mode.
package solve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/almanac/pkg/almanac"
	"github.com/ib-77/almanac/pkg/almanac/text"
	"github.com/ib-77/almanac/pkg/rop"
	"github.com/ib-77/almanac/pkg/rop/chain"
	"github.com/ib-77/almanac/pkg/rop/lite"
)

// ModeResult is the answer for one seed mode.
type ModeResult struct {
	Mode      almanac.Mode `json:"mode"`
	Inputs    int          `json:"inputs"`
	Intervals int          `json:"intervals"`
	Width     int64        `json:"width"`
	Closest   int64        `json:"closest"`
}

// Report describes a finished run.
type Report struct {
	RunID   uuid.UUID     `json:"run_id"`
	Stages  int           `json:"stages"`
	Seeds   int           `json:"seeds"`
	Results []ModeResult  `json:"results"`
	Elapsed time.Duration `json:"elapsed"`
}

// Solver runs queries. Worker lines are read from the context (lite.WithLines).
type Solver struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Solver{logger: logger}
}

type loaded struct {
	doc      *text.Document
	pipeline *almanac.Pipeline
}

type outcome struct {
	report *Report
	err    error
}

// Run reads a document from r and answers every mode in modes.
func (s *Solver) Run(ctx context.Context, r io.Reader, modes ...almanac.Mode) (*Report, error) {
	if len(modes) == 0 {
		return nil, fmt.Errorf("no seed mode requested")
	}
	started := time.Now()

	input := chain.FromValue(ctx, r)
	runID := input.Result().Id()
	log := s.logger.With("run_id", runID)

	built := chain.ThenTry(chain.ThenTry(input, parse), build).
		Ensure(func(_ context.Context, l loaded) {
			log.Debug("pipeline built", "stages", l.pipeline.Len(), "seeds", len(l.doc.Seeds))
		})

	answered := chain.ThenTry(built, func(ctx context.Context, l loaded) (*Report, error) {
		results, err := s.query(ctx, log, l, modes)
		if err != nil {
			return nil, err
		}
		return &Report{
			RunID:   runID,
			Stages:  l.pipeline.Len(),
			Seeds:   len(l.doc.Seeds),
			Results: results,
		}, nil
	})

	out := chain.Finally(answered,
		func(_ context.Context, rep *Report) outcome {
			rep.Elapsed = time.Since(started)
			log.Info("run finished", "modes", len(rep.Results), "elapsed", rep.Elapsed)
			return outcome{report: rep}
		},
		func(_ context.Context, err error) outcome {
			log.Error("run failed", "error", err)
			return outcome{err: err}
		},
		func(_ context.Context, err error) outcome {
			log.Warn("run cancelled", "error", err)
			return outcome{err: err}
		})
	return out.report, out.err
}

// Load parses a document and builds its pipeline.
func Load(ctx context.Context, r io.Reader) (*text.Document, *almanac.Pipeline, error) {
	res := chain.ThenTry(chain.ThenTry(chain.FromValue(ctx, r), parse), build).Result()
	l, err := res.Unwrap()
	if err != nil {
		return nil, nil, err
	}
	return l.doc, l.pipeline, nil
}

func parse(_ context.Context, r io.Reader) (*text.Document, error) {
	return text.Parse(r)
}

func build(_ context.Context, doc *text.Document) (loaded, error) {
	p, err := doc.Pipeline()
	if err != nil {
		return loaded{}, err
	}
	return loaded{doc: doc, pipeline: p}, nil
}

// query answers each mode concurrently; results keep the order of modes.
func (s *Solver) query(ctx context.Context, log *slog.Logger, l loaded, modes []almanac.Mode) ([]ModeResult, error) {
	lines := lite.Lines(ctx, 1)
	results := make([]ModeResult, len(modes))

	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		g.Go(func() error {
			res := answer(gctx, l, mode, lines)
			mr, err := res.Unwrap()
			if err != nil {
				return fmt.Errorf("%s mode: %w", mode, err)
			}
			log.Info("mode solved",
				"mode", mode,
				"stages", l.pipeline.Len(),
				"intervals", mr.Intervals,
				"closest", mr.Closest)
			results[i] = mr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func answer(ctx context.Context, l loaded, mode almanac.Mode, lines int) rop.Result[ModeResult] {
	ivs, err := almanac.Intervals(mode, l.doc.Seeds)
	if err != nil {
		return rop.Fail[ModeResult](err)
	}
	var out []almanac.Interval
	if lines > 1 {
		out, err = l.pipeline.PropagateParallel(ctx, ivs, lines)
	} else {
		out, err = l.pipeline.Propagate(ivs)
	}
	if err != nil {
		return rop.FromError[ModeResult](err)
	}
	closest, err := almanac.Lowest(out)
	if err != nil {
		return rop.Fail[ModeResult](err)
	}
	return rop.Success(ModeResult{
		Mode:      mode,
		Inputs:    len(ivs),
		Intervals: len(out),
		Width:     almanac.Width(out),
		Closest:   closest,
	})
}
