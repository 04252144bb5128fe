package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reoring/c3tconv"
	"github.com/reoring/c3tconv/internal/c3b"
	"github.com/reoring/c3tconv/internal/config"
	"github.com/reoring/c3tconv/internal/ctxlog"
)

// App runs one conversion or check with an isolated logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    config.Effective

	// newWriter returns the binary model writer; tests swap it for a fake.
	newWriter func() c3tconv.Writer
}

// New builds an App. Logs go to logW, user-facing summaries to outW.
func New(outW, logW io.Writer, cfg config.Effective) *App {
	return &App{
		outW:      outW,
		logger:    newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		cfg:       cfg,
		newWriter: func() c3tconv.Writer { return c3b.NewFile() },
	}
}

// Convert reads the input document, builds the model and writes either one
// combined artifact or one artifact per animation.
func (a *App) Convert(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if a.cfg.Input == "" || a.cfg.Output == "" {
		return &ExitError{Code: ExitUsage, Err: ErrMissingPath}
	}

	m, err := a.load(ctx, a.parseOpt(nil))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	w := &loggingWriter{next: a.newWriter(), logger: ctxlog.FromContext(ctx)}
	if a.cfg.SeparateAnim {
		err = c3tconv.WriteSplit(m, a.cfg.Output, w)
	} else {
		err = c3tconv.WriteCombined(m, a.cfg.Output, w)
	}
	if err != nil {
		ctxlog.FromContext(ctx).Error("Conversion failed.", "error", err)
		return err
	}
	ctxlog.FromContext(ctx).Info("Conversion finished.", "artifacts", w.written)
	return nil
}

// Check parses and validates the input without writing anything and prints a
// summary to outW. Duplicate keys are reported as warnings unless the
// configuration already rejects them.
func (a *App) Check(ctx context.Context) (c3tconv.Stats, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if a.cfg.Input == "" {
		return c3tconv.Stats{}, &ExitError{Code: ExitUsage, Err: ErrMissingPath}
	}

	warnings := 0
	logger := ctxlog.FromContext(ctx)
	opt := a.parseOpt(func(is c3tconv.Issue) {
		warnings++
		logger.Warn("Duplicate key.", "path", is.Path, "detail", is.Message)
	})
	if opt.Strictness.OnDuplicateKey == c3tconv.DuplicateIgnore {
		opt.Strictness.OnDuplicateKey = c3tconv.DuplicateWarn
	}

	m, err := a.load(ctx, opt)
	if err != nil {
		return c3tconv.Stats{}, err
	}
	st := m.Stats()
	fmt.Fprintf(a.outW, "%s: ok (c3t %s, %d animations, %d tracks, %d keyframes, %d warnings)\n",
		a.cfg.Input, m.Version, st.Animations, st.Tracks, st.Keyframes, warnings)
	return st, nil
}

func (a *App) parseOpt(sink func(c3tconv.Issue)) c3tconv.ParseOpt {
	return c3tconv.ParseOpt{
		Strictness: c3tconv.Strictness{OnDuplicateKey: a.cfg.DuplicateKeys},
		MaxDepth:   a.cfg.MaxDepth,
		MaxBytes:   a.cfg.MaxInputBytes,
		IssueSink:  sink,
	}
}

// load reads at most MaxInputBytes+1 bytes of the input and parses them. Open
// and read failures are ExitInput; everything else comes from the core.
func (a *App) load(ctx context.Context, opt c3tconv.ParseOpt) (*c3tconv.Model, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := readInput(a.cfg.Input, opt.MaxBytes)
	if err != nil {
		logger.Error("Unable to read input.", "path", a.cfg.Input, "error", err)
		return nil, &ExitError{Code: ExitInput, Err: err}
	}
	logger.Debug("Input read.", "path", a.cfg.Input, "bytes", len(data))

	m, err := c3tconv.ParseDocument(data, opt)
	if err != nil {
		logger.Error("Input rejected.", "path", a.cfg.Input, "error", err)
		return nil, err
	}
	st := m.Stats()
	logger.Info("Model built.",
		"version", m.Version.String(),
		"animations", st.Animations,
		"tracks", st.Tracks,
		"keyframes", st.Keyframes)
	return m, nil
}

func readInput(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
