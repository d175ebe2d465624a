package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"perspective-tool/internal/scale"
)

// RunnerConfig holds the parameters for a headless rendering run.
type RunnerConfig struct {
	HouseArea    float64
	HouseUnit    scale.AreaUnit
	CityArea     float64
	CityUnit     scale.AreaUnit
	Country      string
	ShowBirths   bool
	ShowDeaths   bool
	ScreenWidth  int
	ScreenHeight int
	OutputDir    string
	Verbose      bool

	spatial bool
}

// Spatial reports whether the run includes the spatial visualizations.
func (c *RunnerConfig) Spatial() bool { return c.spatial }

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns a nil config when no arguments are given or help is requested;
// the caller then starts the GUI instead.
func ParseFlags() (*RunnerConfig, error) {
	return parseFlags(os.Args[1:], os.Stderr)
}

func parseFlags(args []string, errOut io.Writer) (*RunnerConfig, error) {
	if len(args) == 0 {
		return nil, nil // No args = use GUI
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		OutputDir:    ".",
	}

	var houseUnit, cityUnit, screen string

	fs := flag.NewFlagSet("perspective-tool", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.Float64Var(&cfg.HouseArea, "house", 0, "House area (requires -city and -country)")
	fs.StringVar(&houseUnit, "house-unit", scale.SquareYards.String(), "House area unit: sq. feet, sq. yards, sq. meters")
	fs.Float64Var(&cfg.CityArea, "city", 0, "City area")
	fs.StringVar(&cityUnit, "city-unit", scale.SquareKilometers.String(), "City area unit: sq. kms, sq. miles")
	fs.StringVar(&cfg.Country, "country", "", "Country name, exactly as listed in the country table")
	fs.BoolVar(&cfg.ShowBirths, "births", false, "Render the daily/hourly births grid")
	fs.BoolVar(&cfg.ShowDeaths, "deaths", false, "Render the daily/hourly deaths grid")
	fs.StringVar(&screen, "screen", "1920x1080", "Target screen geometry, WIDTHxHEIGHT")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Output directory for PNG files")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory for PNG files")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose (debug) logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if cfg.HouseUnit, err = scale.ParseAreaUnit(houseUnit); err != nil {
		return nil, fmt.Errorf("-house-unit: %w", err)
	}
	if cfg.CityUnit, err = scale.ParseAreaUnit(cityUnit); err != nil {
		return nil, fmt.Errorf("-city-unit: %w", err)
	}
	if cfg.ScreenWidth, cfg.ScreenHeight, err = parseScreen(screen); err != nil {
		return nil, err
	}

	cfg.spatial = cfg.HouseArea != 0 || cfg.CityArea != 0 || cfg.Country != ""
	if !cfg.spatial && !cfg.ShowBirths && !cfg.ShowDeaths {
		return nil, fmt.Errorf("nothing to render: pass -house/-city/-country, -births, or -deaths")
	}

	return cfg, nil
}

func parseScreen(s string) (width, height int, err error) {
	if n, _ := fmt.Sscanf(s, "%dx%d", &width, &height); n != 2 || width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("-screen must be WIDTHxHEIGHT, got %q", s)
	}
	return width, height, nil
}

// PrintUsage prints command-line usage information.
func PrintUsage() {
	fmt.Println(strings.TrimSpace(`
perspective-tool - proportional pixel-grid visualizations

Usage:
  perspective-tool                                      Start the GUI
  perspective-tool -house N -city N -country NAME       Render the spatial grids
  perspective-tool -births -deaths                      Render the population grids

Flags:
  -house N          House area
  -house-unit U     "sq. feet", "sq. yards" (default), or "sq. meters"
  -city N           City area
  -city-unit U      "sq. kms" (default) or "sq. miles"
  -country NAME     Country name from the built-in table
  -births           Render births per day (hourly inset)
  -deaths           Render deaths per day (hourly inset)
  -screen WxH       Target screen geometry (default 1920x1080)
  -o, -out DIR      Output directory (default ".")
  -v                Debug logging

The spatial flags render three images: house-in-city, city-in-world (with the
country as a green inset), and the Earth-orbit diagram.
`))
}
