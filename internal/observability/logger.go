package observability

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds a console logger tagged with the app name and a fresh run
// id, and installs it as the global zerolog logger.
func InitLogger(app string, verbose bool) zerolog.Logger {
	return initLogger(os.Stdout, app, verbose)
}

func initLogger(out io.Writer, app string, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().
		Timestamp().
		Str("app", app).
		Str("run", uuid.NewString()).
		Logger()
	log.Logger = logger
	return logger
}
