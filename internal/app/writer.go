package app

import (
	"log/slog"

	"github.com/reoring/c3tconv"
)

// loggingWriter decorates a c3tconv.Writer with one log line per artifact.
type loggingWriter struct {
	next    c3tconv.Writer
	logger  *slog.Logger
	model   *c3tconv.Model
	written int
}

func (w *loggingWriter) Register(m *c3tconv.Model) {
	w.model = m
	w.next.Register(m)
}

func (w *loggingWriter) WriteToPath(path string) error {
	if err := w.next.WriteToPath(path); err != nil {
		w.logger.Error("Artifact write failed.", "path", path, "error", err)
		return err
	}
	w.written++
	var anims int
	if w.model != nil {
		anims = len(w.model.Animations)
	}
	w.logger.Info("Artifact written.", "path", path, "animations", anims)
	return nil
}
