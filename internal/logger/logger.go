// Package logger builds the process logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to stderr at level in the given format.
// Unknown levels fall back to info, unknown formats to console.
func New(level, format string) zerolog.Logger {
	return newWithWriter(os.Stderr, level, format)
}

func newWithWriter(w io.Writer, level, format string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logLevel := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			// The real logger does not exist yet.
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', defaulting to 'info'\n", level)
		} else {
			logLevel = parsed
		}
	}

	out := w
	if strings.ToLower(format) != FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).
		Level(logLevel).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Str("app", "dallama")

	if info, ok := debug.ReadBuildInfo(); ok {
		ctx = ctx.Str("go_version", info.GoVersion).Str("git_revision", revision(info))
	}
	if logLevel <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}

	l := ctx.Logger()
	zerolog.DefaultContextLogger = &l
	return l
}

func revision(info *debug.BuildInfo) string {
	for _, v := range info.Settings {
		if v.Key == "vcs.revision" {
			return v.Value
		}
	}
	return "unknown"
}
