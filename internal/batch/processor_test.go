package batch

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pattern-renderer/internal/ppm"
	"pattern-renderer/internal/raster"
)

var testParams = Params{
	Foreground: 0xFF0000,
	Background: 0x000000,
	TileSize:   32,
	Radius:     85,
}

func TestDefaultJobs(t *testing.T) {
	jobs := DefaultJobs(testParams)
	want := []string{
		"rectangle.ppm",
		"striped_pattern.ppm",
		"checker_pattern.ppm",
		"solid_circle.ppm",
		"halo_circle.ppm",
	}
	if len(jobs) != len(want) {
		t.Fatalf("%d jobs, want %d", len(jobs), len(want))
	}
	for i, j := range jobs {
		if j.File != want[i] {
			t.Errorf("job %d file = %q, want %q", i, j.File, want[i])
		}
		if j.Draw == nil {
			t.Errorf("job %d has no generator", i)
		}
	}
}

func TestRun_WritesEveryImage(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr, logs bytes.Buffer
	buf := raster.NewBuffer(256, 256)

	results := Run(Config{
		OutputDir: dir,
		Stdout:    &stdout,
		Stderr:    &stderr,
		Logger:    slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}, buf, DefaultJobs(testParams))

	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}
	for _, r := range results {
		if !r.Success {
			t.Errorf("%s failed: %s", r.Name, r.Error)
			continue
		}
		info, err := os.Stat(r.File)
		if err != nil {
			t.Errorf("%s: %v", r.File, err)
			continue
		}
		if info.Size() != int64(ppm.Size(256, 256)) {
			t.Errorf("%s: %d bytes, want %d", r.File, info.Size(), ppm.Size(256, 256))
		}
		if !strings.Contains(stdout.String(), "Save "+r.File+"\n") {
			t.Errorf("stdout missing confirmation for %s", r.File)
		}
	}
	if !strings.Contains(logs.String(), "job finished") {
		t.Error("no diagnostics logged")
	}

	// The buffer is reused in place and ends holding the last image.
	want := raster.NewBuffer(256, 256)
	raster.HaloCircle(want, 85, testParams.Foreground, testParams.Background)
	for i := range want.Pix {
		if buf.Pix[i] != want.Pix[i] {
			t.Fatalf("buffer Pix[%d] = %#x, want last image %#x", i, buf.Pix[i], want.Pix[i])
		}
	}
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	drawn := 0
	draw := func(b *raster.Buffer) { drawn++; raster.Fill(b, 0x00FF00) }

	jobs := []Job{
		{Name: "first", File: "first.ppm", Draw: draw},
		{Name: "broken", File: filepath.Join("no-such-dir", "broken.ppm"), Draw: draw},
		{Name: "last", File: "last.ppm", Draw: draw},
	}
	results := Run(Config{OutputDir: dir, Stdout: &stdout, Stderr: &stderr}, raster.NewBuffer(4, 4), jobs)

	if drawn != 3 {
		t.Errorf("%d generators ran, want 3", drawn)
	}
	if len(results) != 3 {
		t.Fatalf("%d results, want 3", len(results))
	}
	if !results[0].Success || results[1].Success || !results[2].Success {
		t.Errorf("success = %v/%v/%v, want true/false/true",
			results[0].Success, results[1].Success, results[2].Success)
	}
	if !strings.HasPrefix(stderr.String(), "ERROR: could not save as ppm file: ") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "broken.ppm") {
		t.Errorf("stderr does not name the failing file: %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "last.ppm")); err != nil {
		t.Errorf("job after the failure was not written: %v", err)
	}
}

func TestRun_NilWriters(t *testing.T) {
	jobs := []Job{{Name: "x", File: "x.ppm", Draw: func(b *raster.Buffer) {}}}
	results := Run(Config{OutputDir: t.TempDir()}, raster.NewBuffer(1, 1), jobs)
	if len(results) != 1 || !results[0].Success {
		t.Errorf("results = %+v", results)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Name: "rectangle", File: filepath.Join(dir, "rectangle.ppm"), Success: true},
		{Name: "broken", File: filepath.Join(dir, "sub", "broken.ppm"), Error: "boom"},
	}
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, 32, 16, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("%d entries, want 2", len(entries))
	}
	if entries[0].Image != "rectangle.ppm" || entries[0].Width != 32 || entries[0].Height != 16 || !entries[0].Success {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Image != "sub/broken.ppm" || entries[1].Success || entries[1].Error != "boom" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}
