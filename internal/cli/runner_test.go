package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"perspective-tool/internal/scale"
	"perspective-tool/internal/viz"
)

func TestRun_Spatial(t *testing.T) {
	dir := t.TempDir()
	cfg := &RunnerConfig{
		HouseArea:    1500,
		HouseUnit:    scale.SquareYards,
		CityArea:     50,
		CityUnit:     scale.SquareKilometers,
		Country:      "Singapore",
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		OutputDir:    dir,
		spatial:      true,
	}

	if err := Run(cfg, io.Discard); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	// House-in-city, city-in-world, and the orbit diagram.
	if len(entries) != 3 {
		t.Fatalf("wrote %d files, want 3", len(entries))
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".png") {
			t.Errorf("unexpected file %q", e.Name())
		}
	}
}

func TestRun_Population(t *testing.T) {
	dir := t.TempDir()
	cfg := &RunnerConfig{
		ShowBirths:   true,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		OutputDir:    dir,
	}

	if err := Run(cfg, io.Discard); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "births_per_day*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("births glob matched %d files, want 1", len(matches))
	}
}

func TestRun_InvalidInput(t *testing.T) {
	cfg := &RunnerConfig{
		HouseArea:    -1,
		CityArea:     50,
		Country:      "Singapore",
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		OutputDir:    t.TempDir(),
		spatial:      true,
	}
	cfg.HouseUnit = scale.SquareYards
	cfg.CityUnit = scale.SquareKilometers

	err := Run(cfg, io.Discard)
	if !errors.Is(err, viz.ErrInvalidInput) {
		t.Errorf("Run() error = %v, want ErrInvalidInput", err)
	}
}
