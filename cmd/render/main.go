package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pattern-renderer/internal/batch"
	"pattern-renderer/internal/config"
	"pattern-renderer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	manifest := flag.Bool("manifest", false, "Also write manifest.json next to the images")
	verbose := flag.Bool("v", false, "Log per-image diagnostics to stderr")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Manifest:  *manifest,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logHandler slog.Handler = slog.DiscardHandler
	if *verbose {
		logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(logHandler)
	logger.Debug("config resolved",
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"tile", cfg.TileSize,
		"radius", *cfg.Radius,
		"fg", cfg.Foreground.String(),
		"bg", cfg.Background.String(),
		"output", cfg.OutputDir)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: create output dir: %v\n", err)
	}

	// One buffer, lent to every generator in turn
	buf := raster.NewBuffer(cfg.Width, cfg.Height)
	jobs := batch.DefaultJobs(batch.Params{
		Foreground: *cfg.Foreground,
		Background: *cfg.Background,
		TileSize:   cfg.TileSize,
		Radius:     *cfg.Radius,
	})

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    logger,
	}, buf, jobs)
	logger.Debug("batch done", "elapsed", time.Since(start))

	failed := summarize(os.Stdout, results)

	// Write manifest
	if cfg.Manifest {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, cfg.Width, cfg.Height, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// summarize prints the success count and returns how many jobs failed.
func summarize(w io.Writer, results []batch.Result) int {
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(w, "Rendered: %d/%d\n", len(results)-failed, len(results))
	}
	return failed
}
