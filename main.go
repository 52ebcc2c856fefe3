package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"ribbons/generate"
	"ribbons/palette"
	"ribbons/parallel"

	"github.com/alecthomas/kong"
)

const usage = "usage: ribbons <nr_of_ribbons> [flags]"

type cli struct {
	Workers  int             `help:"Number of concurrent image writers, 0 uses all CPUs" default:"1"`
	Verbose  bool            `help:"Log every saved ribbon" short:"v"`
	Generate generate.CLICmd `cmd:"" default:"withargs" help:"Generate ribbon images, exiting with status 1 if any could not be saved"`
	Palette  palette.CLICmd  `cmd:"" help:"List the built-in palette or save it as a RIFF PAL file"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	exitCode := -1
	var c cli
	parser, err := kong.New(&c,
		kong.Name("ribbons"),
		kong.Description("Generates images of ribbons. Exits with status 1 if a save failed."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "ribbons: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// help was printed
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "ribbons: error: %v\n%s\n", err, usage)
		return 1
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	pool := parallel.Start(c.Workers)
	defer pool.Wait(true)
	kctx.BindTo(stdout, (*io.Writer)(nil))
	if err := kctx.Run(logger, pool.Do, pool.Wait); err != nil {
		logger.Error("failed", "command", kctx.Command(), "error", err)
		return 1
	}
	return 0
}
