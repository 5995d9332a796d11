package main

import (
	"github.com/urfave/cli"
)

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The path of a TOML file with the benchmark configuration",
		Value: "",
	}
	algorithm = cli.StringFlag{
		Name:  "algorithm",
		Usage: "The algorithm to run; see --list for the available names",
		Value: "merge",
	}
	size = cli.IntFlag{
		Name:  "size",
		Usage: "The number of items to generate",
		Value: 100000,
	}
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: "The seed of the input generator",
		Value: 1,
	}
	distribution = cli.StringFlag{
		Name:  "distribution",
		Usage: "The shape of the input: random, sorted, reversed, few or equal",
		Value: "random",
	}
	descending = cli.BoolFlag{
		Name:  "descending",
		Usage: "Sort in descending order",
	}
	repeat = cli.IntFlag{
		Name:  "repeat",
		Usage: "The number of times to sort a fresh copy of the input",
		Value: 1,
	}
	depth = cli.IntFlag{
		Name:  "depth",
		Usage: "The fork depth of the parallel algorithms; negative values use the number of logical cores",
		Value: -1,
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "The logger level(s) in the form <pattern>:<level>",
		Value: "*:INFO",
	}
	list = cli.BoolFlag{
		Name:  "list",
		Usage: "Print the registered algorithms and exit",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configFile,
		algorithm,
		size,
		seed,
		distribution,
		descending,
		repeat,
		depth,
		logLevel,
		list,
	}
}

// resolveConfig loads the configuration file, when given, and then
// applies every flag that was set on the command line.
func resolveConfig(ctx *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if path := ctx.GlobalString(configFile.Name); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if ctx.GlobalIsSet(algorithm.Name) {
		cfg.Algorithm = ctx.GlobalString(algorithm.Name)
	}
	if ctx.GlobalIsSet(size.Name) {
		cfg.Size = ctx.GlobalInt(size.Name)
	}
	if ctx.GlobalIsSet(seed.Name) {
		cfg.Seed = ctx.GlobalInt64(seed.Name)
	}
	if ctx.GlobalIsSet(distribution.Name) {
		cfg.Distribution = ctx.GlobalString(distribution.Name)
	}
	if ctx.GlobalIsSet(descending.Name) {
		cfg.Descending = ctx.GlobalBool(descending.Name)
	}
	if ctx.GlobalIsSet(repeat.Name) {
		cfg.Repeat = ctx.GlobalInt(repeat.Name)
	}
	if ctx.GlobalIsSet(depth.Name) {
		cfg.Depth = ctx.GlobalInt(depth.Name)
	}

	return cfg, cfg.Validate()
}
