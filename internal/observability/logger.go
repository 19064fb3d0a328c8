package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ANSI color codes for the colored log handler.
const (
	reset     = "\033[0m"
	red       = "\033[31m"
	green     = "\033[32m"
	yellow    = "\033[33m"
	magenta   = "\033[35m"
	cyan      = "\033[36m"
	whiteAnsi = "\033[37m"
	boldWhite = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: cyan,
	slog.LevelInfo:  green,
	slog.LevelWarn:  yellow,
	slog.LevelError: red,
}

// ColoredHandler is a slog.Handler that renders compact colored lines for
// terminal use.
type ColoredHandler struct {
	h   slog.Handler
	out io.Writer
}

// NewColoredHandler creates a ColoredHandler writing to w.
func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &ColoredHandler{
		h:   slog.NewTextHandler(w, opts),
		out: w,
	}
}

// Enabled implements slog.Handler.
func (h *ColoredHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ColoredHandler) Handle(_ context.Context, r slog.Record) error {
	timeStr := r.Time.Format("15:04:05.000")

	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = whiteAnsi
	}
	levelStr := fmt.Sprintf("%-6s", strings.ToUpper(r.Level.String()))

	var line strings.Builder
	line.WriteString(fmt.Sprintf("%s%s%s ", magenta, timeStr, reset))
	line.WriteString(fmt.Sprintf("%s%s%s ", levelColor, levelStr, reset))
	line.WriteString(fmt.Sprintf("%s%s%s ", boldWhite, r.Message, reset))

	r.Attrs(func(a slog.Attr) bool {
		val := a.Value.String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		line.WriteString(fmt.Sprintf("%s%s%s=%s ", yellow, a.Key, reset, val))
		return true
	})

	_, err := fmt.Fprintln(h.out, line.String())
	return err
}

// WithAttrs implements slog.Handler.
func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ColoredHandler{h: h.h.WithAttrs(attrs), out: h.out}
}

// WithGroup implements slog.Handler.
func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	return &ColoredHandler{h: h.h.WithGroup(name), out: h.out}
}

// NewLogger returns a slog.Logger backed by a ColoredHandler.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewColoredHandler(w, &slog.HandlerOptions{Level: level}))
}
