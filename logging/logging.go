package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Logger writes console-formatted lines. It is a no-op until Setup runs.
	Logger = zerolog.Nop()

	tick atomic.Int64
)

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to
// info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Setup installs Logger. Lines go to console in colour; when file is non-nil
// they are mirrored there without colour.
func Setup(level string, console io.Writer, file io.Writer) {
	if console == nil {
		console = os.Stderr
	}
	zerolog.SetGlobalLevel(ParseLevel(level))

	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly}}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true})
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().
		Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
			e.Int64("tick", tick.Load())
		}))
}

// SetTick records the simulation tick stamped on every line.
func SetTick(n int64) {
	tick.Store(n)
}

// Component returns a child logger tagged with the subsystem name.
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}
