package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const colorReset = "\x1b[0m"

var levelColors = map[slog.Level]string{
	slog.LevelDebug: "\x1b[36m",
	slog.LevelInfo:  "\x1b[32m",
	slog.LevelWarn:  "\x1b[33m",
	slog.LevelError: "\x1b[31m",
}

func parseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return 0, errors.Newf("unknown log level %q", level)
	}
	return lvl, nil
}

// setupLogger logs to stderr, colouring levels when stderr is a terminal.
func setupLogger(level string) (*slog.Logger, error) {
	output := io.Writer(os.Stderr)
	usecolor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	return newLogger(output, level, usecolor)
}

func newLogger(output io.Writer, level string, usecolor bool) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if !usecolor {
		return slog.New(slog.NewTextHandler(output, opts)), nil
	}

	// The level is written by colorHandler as a coloured prefix instead.
	opts.ReplaceAttr = func(groups []string, attr slog.Attr) slog.Attr {
		if len(groups) == 0 && attr.Key == slog.LevelKey {
			return slog.Attr{}
		}
		return attr
	}
	return slog.New(&colorHandler{
		Handler: slog.NewTextHandler(output, opts),
		out:     output,
		mu:      new(sync.Mutex),
	}), nil
}

// colorHandler prefixes each record with its level in colour.
type colorHandler struct {
	slog.Handler
	out io.Writer
	mu  *sync.Mutex
}

func (h *colorHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	prefix := fmt.Sprintf("%s%-5s%s ", levelColors[record.Level], record.Level.String(), colorReset)
	if _, err := io.WriteString(h.out, prefix); err != nil {
		return err
	}
	return h.Handler.Handle(ctx, record)
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithGroup(name), out: h.out, mu: h.mu}
}
