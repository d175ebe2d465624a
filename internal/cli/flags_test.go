package cli

import (
	"io"
	"testing"

	"perspective-tool/internal/scale"
)

func TestParseFlags_NoArgsMeansGUI(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("parseFlags() = %+v, want nil for GUI mode", cfg)
	}
}

func TestParseFlags_Help(t *testing.T) {
	for _, arg := range []string{"help", "--help", "-h"} {
		cfg, err := parseFlags([]string{arg}, io.Discard)
		if err != nil || cfg != nil {
			t.Errorf("parseFlags(%q) = %+v, %v, want nil, nil", arg, cfg, err)
		}
	}
}

func TestParseFlags_Spatial(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-house", "1500",
		"-city", "50",
		"-country", "Singapore",
		"-city-unit", "sq. miles",
		"-o", "/tmp/out",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if !cfg.Spatial() {
		t.Error("Spatial() = false, want true")
	}
	if cfg.HouseArea != 1500 || cfg.CityArea != 50 {
		t.Errorf("areas = %g, %g, want 1500, 50", cfg.HouseArea, cfg.CityArea)
	}
	if cfg.HouseUnit != scale.SquareYards {
		t.Errorf("HouseUnit = %v, want default sq. yards", cfg.HouseUnit)
	}
	if cfg.CityUnit != scale.SquareMiles {
		t.Errorf("CityUnit = %v, want sq. miles", cfg.CityUnit)
	}
	if cfg.Country != "Singapore" {
		t.Errorf("Country = %q", cfg.Country)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.ScreenWidth != 1920 || cfg.ScreenHeight != 1080 {
		t.Errorf("screen = %dx%d, want default 1920x1080", cfg.ScreenWidth, cfg.ScreenHeight)
	}
}

func TestParseFlags_Population(t *testing.T) {
	cfg, err := parseFlags([]string{"-births", "-deaths", "-screen", "1366x768"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if !cfg.ShowBirths || !cfg.ShowDeaths {
		t.Errorf("births/deaths = %v/%v, want true/true", cfg.ShowBirths, cfg.ShowDeaths)
	}
	if cfg.Spatial() {
		t.Error("Spatial() = true for a population-only run")
	}
	if cfg.ScreenWidth != 1366 || cfg.ScreenHeight != 768 {
		t.Errorf("screen = %dx%d, want 1366x768", cfg.ScreenWidth, cfg.ScreenHeight)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nothing to render", []string{"-v"}},
		{"bad house unit", []string{"-births", "-house-unit", "acres"}},
		{"bad city unit", []string{"-births", "-city-unit", "sq. leagues"}},
		{"bad screen", []string{"-births", "-screen", "huge"}},
		{"zero screen", []string{"-births", "-screen", "0x0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, io.Discard); err == nil {
				t.Errorf("parseFlags(%v) expected error, got nil", tt.args)
			}
		})
	}
}
