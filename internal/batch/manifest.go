package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one image in the output manifest.
type ManifestEntry struct {
	Name    string `json:"name"`
	Image   string `json:"image"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes a JSON listing of results to path. Image paths are
// stored relative to the manifest's directory.
func WriteManifest(path string, width, height int, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		img := r.File
		if rel, err := filepath.Rel(dir, r.File); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries[i] = ManifestEntry{
			Name:    r.Name,
			Image:   img,
			Width:   width,
			Height:  height,
			Success: r.Success,
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
