package main

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"

	"github.com/tychoish/order/opt"
	"github.com/tychoish/order/wpa"
)

// hardware describes the processor that the parallel algorithms
// fan out over.
type hardware struct {
	brand    string
	physical int
	logical  int
	procs    int
}

func detectHardware() hardware {
	return hardware{
		brand:    cpuid.CPU.BrandName,
		physical: cpuid.CPU.PhysicalCores,
		logical:  cpuid.CPU.LogicalCores,
		procs:    runtime.GOMAXPROCS(0),
	}
}

// parallelism is the number of concurrent leaves to plan for: the
// logical cores reported by the processor, bounded by GOMAXPROCS.
// Some virtualized environments report zero cores.
func (h hardware) parallelism() int {
	if h.logical <= 0 {
		return max(1, h.procs)
	}
	return max(1, min(h.logical, h.procs))
}

// forkOptions maps the configured depth onto wpa options.
func forkOptions(cfg *Config, hw hardware) []opt.Provider[*wpa.Conf] {
	if cfg.Depth < 0 {
		return []opt.Provider[*wpa.Conf]{wpa.WithParallelism(hw.parallelism())}
	}
	return []opt.Provider[*wpa.Conf]{wpa.WithDepth(cfg.Depth)}
}
