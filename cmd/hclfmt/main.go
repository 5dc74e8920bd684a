package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/docopt/docopt-go"
)

var usage = `hclfmt

Usage:
  hclfmt fmt [options] [<path>...]
  hclfmt parse <path>
  hclfmt -h | --help

Options:
  --check        Check whether input is formatted. Exit status is 0 if every
                 file is already formatted, non-zero otherwise. Implies --no-write.
  --diff         Print a diff of the formatting changes that were (or would be) made.
  --no-list      Don't print the names of files that were reformatted.
  --no-write     Don't rewrite files in place; report only.
  --watch        Watch <path> for changes and reformat files as they're saved.
  --workers N    Number of files to format concurrently. [default: 0]
                 0 means use the number of available CPUs.
  -h --help      Show this screen.`

var config struct {
	Fmt     bool     `docopt:"fmt"`
	Parse   bool     `docopt:"parse"`
	Check   bool     `docopt:"--check"`
	Diff    bool     `docopt:"--diff"`
	NoList  bool     `docopt:"--no-list"`
	NoWrite bool     `docopt:"--no-write"`
	Watch   bool     `docopt:"--watch"`
	Workers string   `docopt:"--workers"`
	Path    []string `docopt:"<path>"`
}

func main() {
	args, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := args.Bind(&config); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if config.Check {
		config.NoWrite = true
	}

	switch {
	case config.Parse:
		if err := runParse(config.Path); err != nil {
			slog.Error("parse failed", "error", err)
			os.Exit(1)
		}
	default:
		paths := config.Path
		if len(paths) == 0 {
			paths = []string{"."}
		}
		workers := parseWorkers(config.Workers)

		if config.Watch {
			if err := runWatch(paths, workers); err != nil {
				slog.Error("watch failed", "error", err)
				os.Exit(1)
			}
			return
		}

		anyChanged, err := runFormat(paths, workers)
		if err != nil {
			slog.Error("format failed", "error", err)
			os.Exit(1)
		}
		if config.Check && anyChanged {
			os.Exit(1)
		}
	}
}

func parseWorkers(raw string) int {
	n := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return runtime.NumCPU()
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
