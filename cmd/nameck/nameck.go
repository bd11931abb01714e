// nameck loads a set of segment files, indexes them and prints name lookups.
//
//	nameck -manifest MANIFEST.star -symbol wff -label ax-mp -dv
//	nameck -drop 3 -symbol wff set.json
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/stackb/nameset/pkg/collections"
	"github.com/stackb/nameset/pkg/segment"
)

// Config holds configuration for the nameck tool.
type Config struct {
	// Manifest is an optional starlark file listing segment files.
	Manifest string
	// Files are segment files given on the command line, appended after the
	// manifest segments.
	Files []string
	// Labels, Symbols and Floats are the names to look up.
	Labels  []string
	Symbols []string
	Floats  []string
	// Disjoint lists variables whose disjoint partners are printed.
	Disjoint []string
	// GlobalDvs requests a listing of every global disjoint variable statement.
	GlobalDvs bool
	// Drop is a list of segment ids removed through an incremental update
	// before the lookups run.
	Drop []segment.SegmentID
	// Dump prints lookup results in full.
	Dump bool
	// Progress reports loading progress on stderr.
	Progress bool
	// Logger is used for index maintenance messages.
	Logger zerolog.Logger
}

func main() {
	log.SetPrefix("nameck: ")
	log.SetFlags(0) // don't print timestamps

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*Config, error) {
	var (
		cfg                     Config
		labels, symbols, floats collections.StringSlice
		disjoint, drop          collections.StringSlice
		logLevel                string
	)

	fs := flag.NewFlagSet("nameck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Manifest, "manifest", "", "optional starlark manifest that assigns the list of segment files to 'segments'")
	fs.Var(&labels, "label", "label to look up (repeatable)")
	fs.Var(&symbols, "symbol", "math symbol to look up (repeatable)")
	fs.Var(&floats, "float", "variable whose floating hypothesis should be looked up (repeatable)")
	fs.Var(&disjoint, "disjoint", "variable whose global disjoint partners should be listed (repeatable)")
	fs.BoolVar(&cfg.GlobalDvs, "dv", false, "list all global disjoint variable statements")
	fs.Var(&drop, "drop", "segment id to remove with an incremental update before the lookups (repeatable)")
	fs.BoolVar(&cfg.Dump, "dump", false, "dump lookup results in full")
	fs.BoolVar(&cfg.Progress, "progress", false, "report loading progress on stderr")
	fs.StringVar(&logLevel, "log_level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Files = fs.Args()
	if cfg.Manifest == "" && len(cfg.Files) == 0 {
		return nil, fmt.Errorf("-manifest or a non-empty list of segment files is required")
	}
	cfg.Labels = labels
	cfg.Symbols = symbols
	cfg.Floats = floats
	cfg.Disjoint = disjoint

	for _, s := range drop {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("-drop %q: %w", s, err)
		}
		cfg.Drop = append(cfg.Drop, segment.SegmentID(id))
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("-log_level: %w", err)
	}
	cfg.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &cfg, nil
}
