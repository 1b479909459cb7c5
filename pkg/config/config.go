// Package config provides configuration loading and management for cubedq.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cubedq/internal/models"
)

// Instrument geometry modes selecting the coverage pipeline.
const (
	// ModeCorner selects the polygon-coverage pipeline: the channel FOV is
	// a quadrilateral bounded by two extreme slices.
	ModeCorner = "corner"

	// ModeSlicer selects the line-coverage pipeline: each slice footprint
	// is a line on the sky.
	ModeSlicer = "slicer"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Cube describes the output grid geometry
	Cube struct {
		// Nx, Ny, Nz are the cube axis sizes (spatial 1, spatial 2, wavelength)
		Nx int `yaml:"nx"`
		Ny int `yaml:"ny"`
		Nz int `yaml:"nz"`

		// Cdelt1, Cdelt2 are the spatial sampling steps
		Cdelt1 float64 `yaml:"cdelt1"`
		Cdelt2 float64 `yaml:"cdelt2"`

		// Start1, Start2 are the tangent-plane coordinates of the first
		// spaxel center along each spatial axis
		Start1 float64 `yaml:"start1"`
		Start2 float64 `yaml:"start2"`

		// StartWave is the wavelength of the first plane and WaveDelta
		// the spacing between planes
		StartWave float64 `yaml:"startWave"`
		WaveDelta float64 `yaml:"waveDelta"`
	} `yaml:"cube"`

	// Instrument describes the instrument geometry feeding the cube
	Instrument struct {
		// Mode selects the coverage pipeline: "corner" or "slicer"
		Mode string `yaml:"mode"`

		// StartSlice, EndSlice are the 1-based extreme slice numbers
		// bounding the channel (corner mode only)
		StartSlice int `yaml:"startSlice"`
		EndSlice   int `yaml:"endSlice"`

		// NumSlices is the physical slice count (slicer mode only)
		NumSlices int `yaml:"numSlices"`

		// ROIWave is the wavelength region-of-interest half-width used
		// to select samples belonging to a plane
		ROIWave float64 `yaml:"roiWave"`
	} `yaml:"instrument"`

	// Flags holds the DQ flag values written by the rasterizers
	Flags struct {
		Partial int `yaml:"partial"`
		Full    int `yaml:"full"`
	} `yaml:"flags"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Default cube geometry: a small tangent-plane grid centered on the origin
	cfg.Cube.Nx = 17
	cfg.Cube.Ny = 17
	cfg.Cube.Nz = 40
	cfg.Cube.Cdelt1 = 0.13
	cfg.Cube.Cdelt2 = 0.13
	cfg.Cube.Start1 = -1.04
	cfg.Cube.Start2 = -1.04
	cfg.Cube.StartWave = 4.9
	cfg.Cube.WaveDelta = 0.001

	// Default instrument parameters
	cfg.Instrument.Mode = ModeCorner
	cfg.Instrument.StartSlice = 1
	cfg.Instrument.EndSlice = 21
	cfg.Instrument.NumSlices = 30
	cfg.Instrument.ROIWave = 0.0025

	// Default DQ flag values (distinct bits so dithered coverage can OR them)
	cfg.Flags.Partial = models.OverlapPartial
	cfg.Flags.Full = models.OverlapFull

	cfg.Output.Verbose = true

	return cfg
}

// Validate checks the configuration for values the pipelines cannot work with
func (cfg *Config) Validate() error {
	if cfg.Cube.Nx <= 0 || cfg.Cube.Ny <= 0 || cfg.Cube.Nz <= 0 {
		return fmt.Errorf("invalid cube dimensions %dx%dx%d", cfg.Cube.Nx, cfg.Cube.Ny, cfg.Cube.Nz)
	}
	if cfg.Cube.Cdelt1 <= 0 || cfg.Cube.Cdelt2 <= 0 {
		return fmt.Errorf("invalid spatial sampling cdelt1=%g cdelt2=%g", cfg.Cube.Cdelt1, cfg.Cube.Cdelt2)
	}
	if cfg.Instrument.ROIWave <= 0 {
		return fmt.Errorf("invalid wavelength region of interest %g", cfg.Instrument.ROIWave)
	}
	switch cfg.Instrument.Mode {
	case ModeCorner:
		if cfg.Instrument.StartSlice < 1 || cfg.Instrument.EndSlice < 1 {
			return fmt.Errorf("invalid channel slices %d..%d", cfg.Instrument.StartSlice, cfg.Instrument.EndSlice)
		}
	case ModeSlicer:
		if cfg.Instrument.NumSlices < 1 {
			return fmt.Errorf("invalid slice count %d", cfg.Instrument.NumSlices)
		}
	default:
		return fmt.Errorf("unknown instrument mode %q", cfg.Instrument.Mode)
	}
	return nil
}

// Geometry builds the cube geometry described by the configuration,
// materializing the cell center arrays along all three axes.
func (cfg *Config) Geometry() *models.CubeGeometry {
	g := &models.CubeGeometry{
		Nx:     cfg.Cube.Nx,
		Ny:     cfg.Cube.Ny,
		Nz:     cfg.Cube.Nz,
		Cdelt1: cfg.Cube.Cdelt1,
		Cdelt2: cfg.Cube.Cdelt2,
		Xc:     make([]float64, cfg.Cube.Nx),
		Yc:     make([]float64, cfg.Cube.Ny),
		Zc:     make([]float64, cfg.Cube.Nz),
	}
	for i := range g.Xc {
		g.Xc[i] = cfg.Cube.Start1 + float64(i)*cfg.Cube.Cdelt1
	}
	for i := range g.Yc {
		g.Yc[i] = cfg.Cube.Start2 + float64(i)*cfg.Cube.Cdelt2
	}
	for i := range g.Zc {
		g.Zc[i] = cfg.Cube.StartWave + float64(i)*cfg.Cube.WaveDelta
	}
	return g
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
