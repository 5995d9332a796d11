package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/tychoish/order"
	"github.com/tychoish/order/ers"
)

// Report collects the timings of every repetition of a run.
type Report struct {
	Algorithm string
	Items     int
	Elapsed   []time.Duration
}

// Mean returns the average duration of the repetitions.
func (r *Report) Mean() time.Duration {
	if len(r.Elapsed) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Elapsed {
		total += d
	}
	return total / time.Duration(len(r.Elapsed))
}

// Fastest returns the shortest repetition.
func (r *Report) Fastest() time.Duration {
	if len(r.Elapsed) == 0 {
		return 0
	}
	return slices.Min(r.Elapsed)
}

// Slowest returns the longest repetition.
func (r *Report) Slowest() time.Duration {
	if len(r.Elapsed) == 0 {
		return 0
	}
	return slices.Max(r.Elapsed)
}

// run sorts a fresh copy of the generated input once per repetition,
// verifying every result.
func run(cfg *Config, hw hardware) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	input := generate(cfg)
	sorter := algorithms[cfg.Algorithm]
	dir := order.Increasing
	if cfg.Descending {
		dir = order.Decreasing
	}

	report := &Report{Algorithm: cfg.Algorithm, Items: cfg.Count()}
	for iteration := 0; iteration < cfg.Repeat; iteration++ {
		j := job{
			data:  slices.Clone(input),
			start: cfg.Range.Start,
			count: cfg.Count(),
			dir:   dir,
			conf:  forkOptions(cfg, hw),
		}

		started := time.Now()
		if err := sorter(j); err != nil {
			return nil, fmt.Errorf("%s, iteration %d: %w", cfg.Algorithm, iteration, err)
		}
		elapsed := time.Since(started)

		if err := verify(input, j.data, j.start, j.count, dir); err != nil {
			return nil, fmt.Errorf("%s, iteration %d: %w", cfg.Algorithm, iteration, err)
		}

		log.Debug("sorted", "algorithm", cfg.Algorithm, "iteration", iteration, "elapsed", elapsed)
		report.Elapsed = append(report.Elapsed, elapsed)
	}

	return report, nil
}

// verify checks that the output is the input with exactly the
// addressed range sorted.
func verify(input, output []int, start, count int, dir order.Direction) error {
	end := start + count
	switch {
	case len(input) != len(output):
		return ers.NewInvariantViolation(fmt.Sprintf("length changed from %d to %d", len(input), len(output)))
	case !slices.Equal(input[:start], output[:start]) || !slices.Equal(input[end:], output[end:]):
		return ers.NewInvariantViolation("items outside of the range were modified")
	}

	ok, err := order.IsSortedRange(output, start, count, order.Directed(order.Natural[int](), dir))
	if err != nil {
		return err
	}
	if !ok {
		return ers.NewInvariantViolation(fmt.Sprintf("range is not in %s order", dir))
	}

	want, got := slices.Clone(input[start:end]), slices.Clone(output[start:end])
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		return ers.NewInvariantViolation("range is not a permutation of the input")
	}
	return nil
}
