package gen

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Writer formats and writes generated documents.
type Writer struct {
	formatter Formatter

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks write performance.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
	FormatTime   time.Duration
	WriteTime    time.Duration
}

// NewWriter creates a writer. A nil formatter writes documents unchanged.
func NewWriter(f Formatter) *Writer {
	return &Writer{formatter: f}
}

// Metrics returns a snapshot of the write metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write formats src in memory and writes it to path. Parent directories are
// created as needed. The file is replaced atomically, so a failed write
// leaves any previous content in place.
func (w *Writer) Write(ctx context.Context, path string, src []byte) error {
	// 1. Format
	start := time.Now()
	if w.formatter != nil {
		formatted, err := w.formatter.Format(ctx, src, path)
		if err != nil {
			return NewGenerationError("format", path, err)
		}
		src = formatted
	}
	formatTime := time.Since(start)

	// 2. Ensure directory exists
	start = time.Now()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewGenerationError("write", path, errors.Wrap(err, "create directory"))
	}

	// 3. Write to a temporary file and move it into place
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return NewGenerationError("write", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck
	if _, err := tmp.Write(src); err != nil {
		tmp.Close() //nolint:errcheck,gosec
		return NewGenerationError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return NewGenerationError("write", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return NewGenerationError("write", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return NewGenerationError("write", path, err)
	}

	// Update metrics
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(src))
	w.metrics.FormatTime += formatTime
	w.metrics.WriteTime += time.Since(start)
	w.mu.Unlock()
	return nil
}
