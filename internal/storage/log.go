package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Read returns the full content of the log file at path
func (r *LogReader) Read(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("read log: %w", ErrEmptyPath)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("read log: %s is a directory", path)
	}

	var buf bytes.Buffer
	buf.Grow(int(info.Size()))
	var dst io.Writer = &buf
	if r.wrap != nil {
		if w := r.wrap(info.Size()); w != nil {
			dst = io.MultiWriter(&buf, w)
		}
	}

	if _, err := io.Copy(dst, f); err != nil {
		return "", fmt.Errorf("read log %s: %w", path, err)
	}
	return buf.String(), nil
}
