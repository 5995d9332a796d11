package main

import (
	"fmt"
	"os"
	"runtime"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	log = logger.GetOrCreate("sortbench")
)

// appVersion should be populated at build time using ldflags:
//
//	go build -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = "undefined"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "sortbench"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Generates an input, sorts it with one of the order algorithms, verifies and times the result"
	app.Flags = getFlags()
	app.Action = action
	return app
}

func action(ctx *cli.Context) error {
	if err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name)); err != nil {
		return err
	}

	if ctx.GlobalBool(list.Name) {
		for _, name := range algorithmNames() {
			fmt.Fprintln(ctx.App.Writer, name)
		}
		return nil
	}

	cfg, err := resolveConfig(ctx)
	if err != nil {
		return err
	}

	hw := detectHardware()
	log.Info("hardware",
		"cpu", hw.brand,
		"physical cores", hw.physical,
		"logical cores", hw.logical,
		"GOMAXPROCS", hw.procs,
	)
	log.Debug("configuration", "algorithm", cfg.Algorithm, "size", cfg.Size,
		"distribution", cfg.Distribution, "descending", cfg.Descending, "depth", cfg.Depth)

	report, err := run(cfg, hw)
	if err != nil {
		return err
	}

	log.Info("benchmark finished",
		"algorithm", report.Algorithm,
		"items", report.Items,
		"repetitions", len(report.Elapsed),
		"mean", report.Mean(),
		"fastest", report.Fastest(),
		"slowest", report.Slowest(),
	)
	return nil
}
