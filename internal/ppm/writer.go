// Package ppm writes raster buffers as binary portable pixmaps (P6).
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"pattern-renderer/internal/raster"
)

// Header returns the P6 header for a w×h image with 8-bit channels.
func Header(w, h int) []byte {
	return []byte(fmt.Sprintf("P6\n%d %d 255\n", w, h))
}

// Size returns the exact number of bytes Encode produces for a w×h image.
func Size(w, h int) int {
	return len(Header(w, h)) + w*h*3
}

// Encode writes buf as a P6 pixmap: header, then one RGB triple per pixel
// in row-major order, with no row padding.
func Encode(w io.Writer, buf *raster.Buffer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(Header(buf.Width, buf.Height)); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	var px [3]byte
	for _, v := range buf.Pix {
		px[0], px[1], px[2] = raster.Color(v).RGB()
		if _, err := bw.Write(px[:]); err != nil {
			return fmt.Errorf("ppm: write pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}

// Save creates (or truncates) path and encodes buf into it. The file is
// closed on every path; a close error is reported only if nothing else
// failed first.
func Save(path string, buf *raster.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ppm: close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, buf); err != nil {
		return fmt.Errorf("ppm: save %s: %w", path, err)
	}
	return nil
}
