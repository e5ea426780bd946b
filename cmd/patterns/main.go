// cmd/patterns/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// run executes the command logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("patterns", flag.ContinueOnError)
	flags.SetOutput(stderr)

	listOnly := flags.Bool("list", false, "print the demo names and exit")
	runName := flags.String("run", "", "run one demo by name and print its transcript")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "patterns:", err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.slogLevel()}))

	if *listOnly {
		for _, d := range demos {
			_, _ = fmt.Fprintf(stdout, "%-11s %-10s %s\n", d.category, d.name, d.blurb)
		}
		return 0
	}

	// The -run flag wins over PATTERNS_PATTERN; the environment only
	// pre-selects inside the TUI.
	if name := strings.TrimSpace(*runName); name != "" {
		return runOne(name, cfg, log, stdout, stderr)
	}

	if err := runTUI(cfg.Pattern, cfg.TranscriptDir, log); err != nil {
		_, _ = fmt.Fprintln(stderr, "patterns:", err)
		return 1
	}
	return 0
}

// runOne runs a single demo non-interactively and optionally exports its
// transcript.
func runOne(name string, cfg Config, log *slog.Logger, stdout, stderr io.Writer) int {
	d, ok := findDemo(name)
	if !ok {
		_, _ = fmt.Fprintf(stderr, "patterns: unknown demo %q (try -list)\n", name)
		return 1
	}

	log.Debug("run demo", "name", d.name)
	lines := d.run()
	for _, line := range lines {
		_, _ = fmt.Fprintln(stdout, line)
	}

	if cfg.TranscriptDir != "" {
		path, err := exportTranscript(cfg.TranscriptDir, d.name, lines)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "patterns:", err)
			return 1
		}
		log.Info("transcript exported", "path", path)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
