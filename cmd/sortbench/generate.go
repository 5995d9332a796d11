package main

import (
	"math/rand"
	"slices"
)

type generator func(r *rand.Rand, n, low, high int) []int

var generators = map[string]generator{
	"random":   randomInts,
	"sorted":   sortedInts,
	"reversed": reversedInts,
	"few":      fewInts,
	"equal":    equalInts,
}

func randomInts(r *rand.Rand, n, low, high int) []int {
	out := make([]int, n)
	for idx := range out {
		out[idx] = low + r.Intn(high-low)
	}
	return out
}

func sortedInts(r *rand.Rand, n, low, high int) []int {
	out := randomInts(r, n, low, high)
	slices.Sort(out)
	return out
}

func reversedInts(r *rand.Rand, n, low, high int) []int {
	out := sortedInts(r, n, low, high)
	slices.Reverse(out)
	return out
}

// fewInts draws from at most eight distinct values.
func fewInts(r *rand.Rand, n, low, high int) []int {
	return randomInts(r, n, low, low+min(high-low, 8))
}

func equalInts(_ *rand.Rand, n, low, _ int) []int {
	out := make([]int, n)
	for idx := range out {
		out[idx] = low
	}
	return out
}

// generate builds the input described by the configuration.
func generate(cfg *Config) []int {
	return generators[cfg.Distribution](rand.New(rand.NewSource(cfg.Seed)), cfg.Size, cfg.Low, cfg.High)
}
