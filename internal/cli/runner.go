// Package cli implements the headless mode: the same visualizations the GUI
// opens in windows are rendered straight to PNG files.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"perspective-tool/internal/export"
	"perspective-tool/internal/viz"
)

// Run validates the config, builds the requested visualizations, and writes
// one PNG per visualization into cfg.OutputDir. Progress goes to logOut.
func Run(cfg *RunnerConfig, logOut io.Writer) error {
	logger := newLogger(logOut, cfg.Verbose)
	display := viz.Display{ScreenWidth: cfg.ScreenWidth, ScreenHeight: cfg.ScreenHeight}
	now := time.Now()

	var results []*viz.Visualization

	if cfg.Spatial() {
		in := viz.SpatialInput{
			HouseArea: cfg.HouseArea,
			HouseUnit: cfg.HouseUnit,
			CityArea:  cfg.CityArea,
			CityUnit:  cfg.CityUnit,
			Country:   cfg.Country,
		}
		if err := in.Validate(); err != nil {
			return err
		}

		houseInCity, err := viz.HouseInCity(in, display)
		if err != nil {
			return err
		}
		cityInWorld, err := viz.CityInWorld(in, display)
		if err != nil {
			return err
		}
		results = append(results, houseInCity, cityInWorld, viz.EarthOrbit())
	}

	if cfg.ShowBirths {
		births, err := viz.BirthsPerDay(display)
		if err != nil {
			return err
		}
		results = append(results, births)
	}
	if cfg.ShowDeaths {
		deaths, err := viz.DeathsPerDay(display)
		if err != nil {
			return err
		}
		results = append(results, deaths)
	}

	for _, v := range results {
		path := filepath.Join(cfg.OutputDir, export.DefaultName(v.Title, now))
		logger.Debug("rendering", "title", v.Title, "grid",
			fmt.Sprintf("%dx%d", v.Plan.Width, v.Plan.Height), "ratio", v.Ratio)
		if err := export.WritePNG(path, v.Image); err != nil {
			return fmt.Errorf("export %q: %w", v.Title, err)
		}
		logger.Info("wrote", "file", path)
	}

	logger.Info("done", "images", len(results))
	return nil
}
