package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scale-rs/lazysort-linear-mem/config"
	"github.com/scale-rs/lazysort-linear-mem/metrics"
	"github.com/scale-rs/lazysort-linear-mem/monitoring"
	"github.com/urfave/cli"
)

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}

USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} [FILE...]

GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
`
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with [sort] and [log] settings",
	}
	limit = cli.IntFlag{
		Name:  "limit, k",
		Usage: "Number of values to print, 0 prints all of them",
		Value: 10,
	}
	reverse = cli.BoolFlag{
		Name:  "reverse",
		Usage: "Print the largest values first",
	}
	stats = cli.BoolFlag{
		Name:  "stats",
		Usage: "Print the work done by each sort session to stderr",
	}
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "lazysort"
	app.Version = "v0.1.0"
	app.Usage = "Print the smallest (or largest) numbers of the inputs, sorting only as much as needed"
	app.Flags = []cli.Flag{configFile, limit, reverse, stats}
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Action = func(c *cli.Context) error {
		return run(c, stdin)
	}
	return app
}

func run(c *cli.Context, stdin io.Reader) error {
	cfg := config.Default()
	if path := c.String(configFile.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	opts, err := cfg.Sort.Options()
	if err != nil {
		return err
	}
	level, err := cfg.Log.LogLevel()
	if err != nil {
		return err
	}

	inputs, err := readInputs(c.Args(), stdin)
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	err = topK(c.App.Writer, inputs, params{
		limit:   c.Int("limit"),
		reverse: c.Bool(reverse.Name),
		opts:    opts,
		logger:  monitoring.NewLogger("lazysort", c.App.ErrWriter, level),
		metrics: reg,
	})
	if err != nil {
		return err
	}

	if c.Bool(stats.Name) {
		return printStats(c.App.ErrWriter, reg)
	}
	return nil
}
