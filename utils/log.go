package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/interchained/itcpay/constants"
)

type PrettyHandlerOptions struct {
	slog.HandlerOptions
}

// PrettyTextLogHandler renders log records as single colorized lines
// for interactive use. Fields listed in LOG_TOP_LEVEL_HIDDEN_FIELDS
// carry machine-readable phase markers and are not shown.
type PrettyTextLogHandler struct {
	opts   PrettyHandlerOptions
	writer io.Writer
	mutex  *sync.Mutex
	attrs  []slog.Attr
}

func NewPrettyTextLogHandler(writer io.Writer, opts PrettyHandlerOptions) *PrettyTextLogHandler {
	return &PrettyTextLogHandler{
		opts:   opts,
		writer: writer,
		mutex:  &sync.Mutex{},
	}
}

func (h *PrettyTextLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func formatLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return color.New(color.FgRed).Sprintf("[%s]", level.String())
	case level >= slog.LevelWarn:
		return color.New(color.FgYellow).Sprintf("[%s]", level.String())
	case level >= slog.LevelInfo:
		return color.New(color.FgCyan).Sprintf("[%s]", level.String())
	default:
		return color.New(color.FgMagenta).Sprintf("[%s]", level.String())
	}
}

func (h *PrettyTextLogHandler) Handle(_ context.Context, record slog.Record) error {
	var builder strings.Builder
	builder.WriteString(record.Time.Format("15:04:05"))
	builder.WriteString(" ")
	builder.WriteString(formatLevel(record.Level))
	builder.WriteString(" (" + constants.CODENAME + ") ")
	builder.WriteString(record.Message)

	appendAttr := func(attr slog.Attr) {
		if _, hidden := slices.BinarySearch(constants.LOG_TOP_LEVEL_HIDDEN_FIELDS, attr.Key); hidden {
			return
		}
		builder.WriteString(fmt.Sprintf(" %s=%v", attr.Key, attr.Value.Any()))
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(attr)
		return true
	})
	builder.WriteString("\n")

	h.mutex.Lock()
	defer h.mutex.Unlock()
	_, err := io.WriteString(h.writer, builder.String())
	return err
}

func (h *PrettyTextLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyTextLogHandler{
		opts:   h.opts,
		writer: h.writer,
		mutex:  h.mutex,
		attrs:  append(slices.Clone(h.attrs), attrs...),
	}
}

func (h *PrettyTextLogHandler) WithGroup(name string) slog.Handler {
	// groups are not rendered in pretty output
	return h
}

type multiWriter struct {
	writers []io.Writer
}

// NewMultiWriter fans log output out to all writers, ignoring
// individual write failures so a dead log sink never kills a payout.
func NewMultiWriter(writers ...io.Writer) io.Writer {
	return &multiWriter{writers: writers}
}

func (w *multiWriter) Write(p []byte) (int, error) {
	for _, writer := range w.writers {
		writer.Write(p)
	}
	return len(p), nil
}
