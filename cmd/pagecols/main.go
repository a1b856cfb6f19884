// ABOUTME: CLI entry point for pagecols with terminal crash and signal recovery
// ABOUTME: Loads config and the document, paginates it, and dispatches to the display mode

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/pagecols/internal/termfix"

	"github.com/mauromedda/pagecols/internal/config"
	"github.com/mauromedda/pagecols/internal/document"
	"github.com/mauromedda/pagecols/internal/layout"
	pclog "github.com/mauromedda/pagecols/internal/log"
	"github.com/mauromedda/pagecols/internal/mode/interactive"
	"github.com/mauromedda/pagecols/internal/mode/interactive/btea"
	"github.com/mauromedda/pagecols/internal/mode/print"
	"github.com/mauromedda/pagecols/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errUsage = errors.New("expected exactly one FILE argument")

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pagecols %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run performs the startup sequence and dispatches to the selected mode.
func run(args cliArgs) error {
	if len(args.files) != 1 {
		return fmt.Errorf("%w (got %d)", errUsage, len(args.files))
	}
	path := args.files[0]

	env, err := config.Load()
	if err != nil {
		return err
	}
	settings := config.Merge(env, args.overrides())
	if err := settings.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(settings)
	if err != nil {
		return err
	}
	defer closeLog()

	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	tty := terminal.NewProcessTerminal()
	mode := settings.Mode
	var size config.SizeFunc
	if tty.IsTerminal() {
		size = tty.Size
	} else if mode != config.ModePrint {
		pclog.Debug("stdin or stdout is not a terminal; using print mode")
		mode = config.ModePrint
	}

	geom, err := settings.Geometry(size)
	if err != nil {
		return err
	}

	book, err := layout.Paginate(doc.Lines, geom)
	if err != nil {
		return fmt.Errorf("laying out %q: %w", path, err)
	}
	pclog.Debug("%s: %d lines, %d pages, %d columns, %d frames at %dx%d",
		path, len(doc.Lines), book.PageCount(), book.Columns(), book.Len(), geom.Width, geom.Height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case config.ModePrint:
		return print.Run(os.Stdout, book, print.Config{Path: path, Status: settings.Status})

	case config.ModeTea:
		return btea.Run(ctx, btea.Deps{Book: book, Path: path, Status: settings.Status})

	default:
		defer terminal.RestoreOnPanic(tty)
		unwatch := terminal.RestoreOnSignal(tty, exitOnSignal, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer unwatch()

		return interactive.Run(ctx, interactive.Deps{
			Terminal: tty,
			Book:     book,
			Path:     path,
			Status:   settings.Status,
		})
	}
}

// setupLogging applies the configured level and destination. The
// returned func closes the log file, if one was opened.
func setupLogging(s *config.Settings) (func(), error) {
	level, err := pclog.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	pclog.SetLevel(level)

	if s.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	pclog.SetOutput(f)
	return func() {
		pclog.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// exitOnSignal terminates with the conventional 128+signal status.
func exitOnSignal(sig os.Signal) {
	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	os.Exit(code)
}
