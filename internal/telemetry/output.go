package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"stalagmite/internal/config"
)

// OutputManager writes run output as CSV files plus a config snapshot.
type OutputManager struct {
	dir             string
	generationsFile *os.File
	windowsFile     *os.File

	generationsHeaderWritten bool
	windowsHeaderWritten     bool
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	om.generationsFile = f

	f, err = os.Create(filepath.Join(dir, "windows.csv"))
	if err != nil {
		om.generationsFile.Close()
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowsFile = f
	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGeneration appends one row to generations.csv.
func (om *OutputManager) WriteGeneration(rec GenerationRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.generationsFile, []GenerationRecord{rec}, &om.generationsHeaderWritten); err != nil {
		return fmt.Errorf("writing generation: %w", err)
	}
	return nil
}

// WriteWindow appends one row to windows.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.windowsFile, []WindowStats{stats}, &om.windowsHeaderWritten); err != nil {
		return fmt.Errorf("writing window: %w", err)
	}
	return nil
}

// writeRecords writes the header with the first batch only.
func writeRecords(f *os.File, records any, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.generationsFile, om.windowsFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
