package batch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"pattern-renderer/internal/ppm"
	"pattern-renderer/internal/raster"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir string
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger // nil disables diagnostics
}

// Job pairs a generator with the file it is saved to.
type Job struct {
	Name string
	File string
	Draw func(buf *raster.Buffer)
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	File    string
	Success bool
	Error   string
	Elapsed time.Duration
}

// Params is the geometry shared by the default job list.
type Params struct {
	Foreground raster.Color
	Background raster.Color
	TileSize   int
	Radius     int
}

// DefaultJobs returns the standard sequence of pattern images.
func DefaultJobs(p Params) []Job {
	return []Job{
		{
			Name: "rectangle",
			File: "rectangle.ppm",
			Draw: func(buf *raster.Buffer) { raster.Fill(buf, p.Foreground) },
		},
		{
			Name: "striped pattern",
			File: "striped_pattern.ppm",
			Draw: func(buf *raster.Buffer) { raster.Stripes(buf, p.Foreground, p.Background, p.TileSize) },
		},
		{
			Name: "checker pattern",
			File: "checker_pattern.ppm",
			Draw: func(buf *raster.Buffer) { raster.Checker(buf, p.Foreground, p.Background, p.TileSize) },
		},
		{
			Name: "solid circle",
			File: "solid_circle.ppm",
			Draw: func(buf *raster.Buffer) { raster.SolidCircle(buf, p.Radius, p.Foreground, p.Background) },
		},
		{
			Name: "halo circle",
			File: "halo_circle.ppm",
			Draw: func(buf *raster.Buffer) { raster.HaloCircle(buf, p.Radius, p.Foreground, p.Background) },
		},
	}
}

// Run draws each job into buf and saves it, one after another. A failed
// save is reported and the run moves on to the next job.
func Run(cfg Config, buf *raster.Buffer, jobs []Job) []Result {
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		start := time.Now()
		res := processJob(cfg, buf, job)
		res.Elapsed = time.Since(start)

		if res.Success {
			fmt.Fprintf(stdout, "Save %s\n", res.File)
		} else {
			fmt.Fprintf(stderr, "ERROR: could not save as ppm file: %s\n", res.Error)
		}
		log.Debug("job finished",
			"name", res.Name,
			"file", res.File,
			"ok", res.Success,
			"elapsed", res.Elapsed)

		results = append(results, res)
	}
	return results
}

func processJob(cfg Config, buf *raster.Buffer, job Job) Result {
	outPath := filepath.Join(cfg.OutputDir, job.File)
	job.Draw(buf)

	if err := ppm.Save(outPath, buf); err != nil {
		return Result{
			Name:  job.Name,
			File:  outPath,
			Error: err.Error(),
		}
	}

	return Result{
		Name:    job.Name,
		File:    outPath,
		Success: true,
	}
}
