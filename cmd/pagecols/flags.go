// ABOUTME: CLI flag parsing using the stdlib flag package
// ABOUTME: Only flags given explicitly override PAGECOLS_* environment settings

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mauromedda/pagecols/internal/config"
)

type cliArgs struct {
	width   int
	height  int
	status  bool
	mode    string
	print   bool
	verbose bool
	version bool
	files   []string
	set     map[string]bool
}

func parseFlags() cliArgs {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, argv []string) cliArgs {
	var args cliArgs

	fs.IntVar(&args.width, "width", 0, "Frame width in cells (default: terminal width)")
	fs.IntVar(&args.height, "height", 0, "Page height in lines (default: terminal height)")
	fs.BoolVar(&args.status, "status", false, "Reserve the bottom row for a status line")
	fs.StringVar(&args.mode, "mode", config.ModeRaw, "Display mode: raw, tea or print")
	fs.BoolVar(&args.print, "print", false, "Write all frames to stdout without waiting for keys")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: pagecols [flags] FILE\n\n")
		fs.PrintDefaults()
	}

	_ = fs.Parse(argv)

	args.files = fs.Args()
	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	return args
}

// overrides converts explicitly set flags into config overrides.
func (a cliArgs) overrides() config.Overrides {
	var o config.Overrides
	if a.set["width"] {
		o.Width = &a.width
	}
	if a.set["height"] {
		o.Height = &a.height
	}
	if a.set["status"] {
		o.Status = &a.status
	}
	if a.set["mode"] {
		o.Mode = &a.mode
	}
	if a.print {
		mode := config.ModePrint
		o.Mode = &mode
	}
	if a.verbose {
		level := "debug"
		o.LogLevel = &level
	}
	return o
}
