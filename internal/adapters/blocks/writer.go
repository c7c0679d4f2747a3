package blocks

import (
	"bufio"
	"fmt"
	"io"

	"github.com/xvierd/pomobar/internal/domain"
)

// Writer emits one status record per call and flushes it immediately so the
// bar never shows a stale line.
type Writer struct {
	out      *bufio.Writer
	renderer Renderer
}

// NewWriter creates a writer that renders with renderer and writes to w.
func NewWriter(w io.Writer, renderer Renderer) *Writer {
	return &Writer{
		out:      bufio.NewWriter(w),
		renderer: renderer,
	}
}

// Emit renders the timer and writes the record.
func (w *Writer) Emit(t *domain.Timer) error {
	line, err := Encode(w.renderer.Record(t))
	if err != nil {
		return err
	}
	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush status: %w", err)
	}
	return nil
}
