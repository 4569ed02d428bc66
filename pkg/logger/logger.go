package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log = zerolog.Nop()

// Init sets up the global logger: console output in development, JSON otherwise.
func Init(env string) {
	InitWith(env, os.Stdout)
}

// InitWith is Init with a custom sink.
func InitWith(env string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "development" {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Caller().
			Logger()
		return
	}
	Log = zerolog.New(out).With().Timestamp().Logger()
}

func Info() *zerolog.Event  { return Log.Info() }
func Warn() *zerolog.Event  { return Log.Warn() }
func Error() *zerolog.Event { return Log.Error() }
func Debug() *zerolog.Event { return Log.Debug() }
func Fatal() *zerolog.Event { return Log.Fatal() }
