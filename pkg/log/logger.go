package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogger configures the process-wide slog default logger.
// When json is true, records are emitted as JSON lines; otherwise a
// human-readable text handler is used (convenient for the demo CLI).
func SetupLogger(loglevel string, json bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, ToLogLevel(loglevel), json)))
}

// NewHandler builds the handler stack used by SetupLogger: a JSON or text
// handler writing to w, with the level and message keys renamed to
// "severity" and "message", wrapped so that logged errors carry their
// stacktrace.
func NewHandler(w io.Writer, level slog.Level, json bool) slog.Handler {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			}
			return attr
		},
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, &ops)
	} else {
		handler = slog.NewTextHandler(w, &ops)
	}
	return WrapByErrFmtHandler(handler)
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
