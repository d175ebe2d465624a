// Package export writes rendered visualizations to PNG files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG encodes img to path as an RGB PNG, creating the parent directory
// if needed. No compression knobs are exposed.
func WritePNG(path string, img image.Image) error {
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write png file: %w", err)
	}
	return nil
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
