package storage

import (
	"errors"
	"io"

	"uts2ctrf/internal/config"
	"uts2ctrf/internal/domain"
)

// ErrEmptyPath is returned when a read or write is asked for without a path
var ErrEmptyPath = errors.New("empty path")

// Storage reads and writes CTRF reports
type Storage interface {
	Save(path string, report *domain.Report) error
	Load(path string) (*domain.Report, error)
}

// JSONStorage stores reports as indented JSON files
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that encodes with the config's indentation
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// LogReader reads a whole test log. wrap, when non-nil, is given the file
// size and may return a writer that observes the bytes as they are read.
type LogReader struct {
	wrap func(size int64) io.Writer
}

// NewLogReader creates a new LogReader
func NewLogReader() *LogReader {
	return &LogReader{}
}

// Observe sets the read observer
func (r *LogReader) Observe(wrap func(size int64) io.Writer) {
	r.wrap = wrap
}
