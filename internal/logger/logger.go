package logger

import (
	"io"
	"os"
	"time"

	"github.com/lshigami/trivia/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a JSON logger on stdout so anything logged before the
// configuration is loaded still goes somewhere sensible.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Configure applies the level and output format from cfg to the global logger.
func Configure(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stdout
	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	log.Debug().Str("level", level.String()).Bool("pretty", cfg.Log.Pretty).Msg("Logger configured")
	return nil
}
