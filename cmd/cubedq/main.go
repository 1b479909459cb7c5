package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cubedq/pkg/config"
	"cubedq/pkg/coverage"
	"cubedq/pkg/pointcloud"
)

func main() {
	// Parse command line arguments
	pointsFile := flag.String("points", "", "CSV file with detector samples (coord1,coord2,wave,sliceno)")
	configFile := flag.String("config", "cubedq.yaml", "YAML configuration file")
	outputFile := flag.String("output", "dq.bin", "Output DQ plane file (int32 little-endian)")
	mode := flag.String("mode", "", "Override instrument mode: corner or slicer")
	flat := flag.Bool("flat", false, "Skip coverage analysis and write an all-zero DQ plane")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to -config and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configFile); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configFile)
		return
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mode != "" {
		cfg.Instrument.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	geometry := cfg.Geometry()

	// The flat path needs no point cloud at all
	if *flat {
		dq, err := coverage.FlatDQ(geometry)
		if err != nil {
			log.Fatalf("Failed to build flat DQ plane: %v", err)
		}
		if err := writeDQ(*outputFile, dq); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Flat DQ plane (%d voxels) written to %s\n", len(dq), *outputFile)
		return
	}

	if *pointsFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	points, err := pointcloud.Load(*pointsFile)
	if err != nil {
		log.Fatalf("Failed to load point cloud: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Loaded %d detector samples\n", points.Len())
		fmt.Printf("Cube geometry: %dx%dx%d, sampling %.4f x %.4f\n",
			geometry.Nx, geometry.Ny, geometry.Nz, geometry.Cdelt1, geometry.Cdelt2)
		fmt.Printf("Instrument mode: %s\n", cfg.Instrument.Mode)
	}

	var mapper coverage.PlaneMapper
	switch cfg.Instrument.Mode {
	case config.ModeCorner:
		mapper = &coverage.CornerFOVMapper{
			Points:     points,
			Geometry:   geometry,
			StartSlice: cfg.Instrument.StartSlice,
			EndSlice:   cfg.Instrument.EndSlice,
			ROIWave:    cfg.Instrument.ROIWave,
			Partial:    cfg.Flags.Partial,
			Full:       cfg.Flags.Full,
		}
	case config.ModeSlicer:
		mapper = &coverage.SlicerMapper{
			Points:    points,
			Geometry:  geometry,
			NumSlices: cfg.Instrument.NumSlices,
			ROIWave:   cfg.Instrument.ROIWave,
			Partial:   cfg.Flags.Partial,
		}
	}

	builder := &coverage.Builder{Geometry: geometry}

	startTime := time.Now()
	dq, err := builder.Build(mapper)
	if err != nil {
		log.Fatalf("DQ build failed: %v", err)
	}
	elapsed := time.Since(startTime)

	if err := writeDQ(*outputFile, dq); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	summary, err := coverage.Summarize(dq, geometry, cfg.Flags.Partial, cfg.Flags.Full)
	if err != nil {
		log.Fatalf("Failed to summarize coverage: %v", err)
	}

	fmt.Printf("\nDQ plane written to %s (%.2fs)\n", *outputFile, elapsed.Seconds())
	fmt.Printf("Coverage summary:\n")
	fmt.Printf("=================\n")
	fmt.Printf("Wavelength planes: %d (%d empty)\n", geometry.Nz, summary.EmptyPlanes)
	fmt.Printf("Mean covered fraction: %.3f\n", summary.MeanFraction)
	fmt.Printf("Median covered fraction: %.3f\n", summary.MedianFraction)

	if cfg.Output.Verbose {
		fmt.Printf("\nPer-plane coverage:\n")
		for _, p := range summary.Planes {
			fmt.Printf("  plane %3d: %4d partial, %4d full (%.1f%%)\n",
				p.Plane, p.Partial, p.Full, p.Fraction*100)
		}
	}
}

// writeDQ writes the DQ array as little-endian int32 values.
func writeDQ(path string, dq []int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	buf := make([]int32, len(dq))
	for i, v := range dq {
		buf[i] = int32(v)
	}
	if err := binary.Write(file, binary.LittleEndian, buf); err != nil {
		return fmt.Errorf("failed to write DQ data: %w", err)
	}
	return nil
}
