package logging

import (
	"io"
	"os"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/config"
)

// Setup configures the global zerolog logger from config. With a file
// configured, output goes to a rotated log file; otherwise it goes to stderr,
// pretty-printed outside production.
func Setup(cfg config.LoggingConfig) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		w, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithMaxAge(cfg.MaxAge),
			rotatelogs.WithRotationTime(cfg.RotateTime),
		)
		if err != nil {
			return err
		}
		out = w
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	log.Logger = log.Output(out)
	return nil
}
