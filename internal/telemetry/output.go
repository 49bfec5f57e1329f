package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// PopulationFile is the CSV file written into the output directory.
const PopulationFile = "population.csv"

// Writer appends WindowStats rows to a CSV stream, writing the header once.
type Writer struct {
	w             io.Writer
	headerWritten bool
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write appends one record.
func (cw *Writer) Write(stats WindowStats) error {
	records := []WindowStats{stats}
	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("writing population: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
		return fmt.Errorf("writing population: %w", err)
	}
	return nil
}

// OutputManager owns the files of one run's output directory.
type OutputManager struct {
	dir  string
	file *os.File
	csv  *Writer
}

// NewOutputManager creates dir and opens population.csv inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, PopulationFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", PopulationFile, err)
	}
	return &OutputManager{dir: dir, file: f, csv: NewWriter(f)}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteStats appends a record to population.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.csv.Write(stats)
}

// Close closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.file == nil {
		return nil
	}
	err := om.file.Close()
	om.file = nil
	return err
}
