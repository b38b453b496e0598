package logger

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Milliseconds keep ticks logged within the same second in order.
const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once
var Log zerolog.Logger

func configureLogger() {
	zerolog.TimeFieldFormat = timeFormat
	Log = New(os.Stderr)
}

// New builds a console logger on w. Colour is only used on terminals.
func New(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// GetLoggerConfigured sets the global level the first time the logger is
// built. Later calls return the existing logger unchanged.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configureLogger()
		zerolog.SetGlobalLevel(level)
	})
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(configureLogger)
	return &Log
}

// Component returns the process logger tagged with a component name,
// e.g. "fsm" or "feed".
func Component(name string) *zerolog.Logger {
	return tagged(GetLogger(), name)
}

func tagged(base *zerolog.Logger, name string) *zerolog.Logger {
	l := base.With().Str("component", name).Logger()
	return &l
}

// SetLevel applies to every logger, including component loggers built
// before the call.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
