// Package pointcloud loads detector sample tables for the coverage engine.
// A point cloud file is a CSV table with one sample per row:
// coord1,coord2,wave,sliceno. A header row is detected and skipped.
package pointcloud

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cubedq/internal/models"
)

// Load reads a point cloud from a CSV file and validates it.
func Load(path string) (*models.PointCloud, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open point cloud file: %w", err)
	}
	defer file.Close()

	pc, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return pc, nil
}

// Read parses point cloud rows from r.
func Read(r io.Reader) (*models.PointCloud, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	pc := &models.PointCloud{}
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		c1, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			if row == 1 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("row %d: bad coord1 %q", row, record[0])
		}
		c2, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad coord2 %q", row, record[1])
		}
		wave, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad wave %q", row, record[2])
		}
		sliceNo, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad sliceno %q", row, record[3])
		}

		pc.Coord1 = append(pc.Coord1, c1)
		pc.Coord2 = append(pc.Coord2, c2)
		pc.Wave = append(pc.Wave, wave)
		pc.SliceNo = append(pc.SliceNo, sliceNo)
	}

	if err := pc.Validate(); err != nil {
		return nil, err
	}
	return pc, nil
}
