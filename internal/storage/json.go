package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"uts2ctrf/internal/domain"
)

// Encode returns the report as indented JSON without HTML escaping
func (s *JSONStorage) Encode(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", s.cfg.Indent)
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the report to path. The file is written to a temporary
// sibling first and renamed into place, so path is never left half written.
func (s *JSONStorage) Save(path string, report *domain.Report) error {
	if path == "" {
		return fmt.Errorf("write report: %w", ErrEmptyPath)
	}

	data, err := s.Encode(report)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads a CTRF report written by Save (or any CTRF producer).
func (s *JSONStorage) Load(path string) (*domain.Report, error) {
	if path == "" {
		return nil, fmt.Errorf("read report: %w", ErrEmptyPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	if report.Results.Summary.Suites == nil {
		report.Results.Summary.Suites = make(map[string]int)
	}
	return &report, nil
}
