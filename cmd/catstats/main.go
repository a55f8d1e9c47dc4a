// Command catstats prints per-category min/avg/max over a "name;value" file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/pkg/profile"

	"github.com/dhartunian/catstats/internal/aggregate"
	"github.com/dhartunian/catstats/internal/chunk"
	"github.com/dhartunian/catstats/internal/keyhash"
	"github.com/dhartunian/catstats/internal/mapfile"
	"github.com/dhartunian/catstats/internal/report"
)

const (
	exitOK = iota
	exitIO
	exitFormat
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	level := slog.LevelInfo
	cfg, err := parseConfig(args, getenv)
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if err != nil {
		logger.Error("invalid arguments", "err", err)
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
	hash, err := keyhash.ByName(cfg.hasher)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return exitUsage
	}

	if cfg.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profileDir), profile.Quiet).Stop()
	}

	// The run allocates little beyond the per-chunk maps.
	defer debug.SetGCPercent(debug.SetGCPercent(-1))

	start := time.Now()
	f, err := mapfile.Open(cfg.path)
	if err != nil {
		logger.Error("cannot read input", "err", err)
		return exitIO
	}
	defer f.Close()

	opts := aggregate.Options{Workers: cfg.workers, Hasher: hash}
	logger.Debug("aggregating",
		"path", f.Name(),
		"bytes", len(f.Data()),
		"workers", cfg.workers,
		"hasher", cfg.hasher)

	res, err := aggregate.Run(f.Data(), opts)
	if err != nil {
		if errors.Is(err, chunk.ErrFormat) {
			logger.Error("malformed input", "path", f.Name(), "err", err)
			return exitFormat
		}
		logger.Error("aggregation failed", "err", err)
		return exitIO
	}
	if res.Collisions > 0 {
		logger.Warn("distinct categories share a hash key; their stats are merged within a chunk",
			"keys", res.Collisions, "hasher", cfg.hasher)
	}

	if err := report.Write(stdout, res); err != nil {
		logger.Error("cannot write report", "err", err)
		return exitIO
	}
	logger.Debug("done",
		"lines", res.Lines,
		"categories", res.Len(),
		"elapsed", time.Since(start))
	return exitOK
}
